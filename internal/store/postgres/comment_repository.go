package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/goto/engagement/core/comment"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store/postgres/model"
	"gorm.io/gorm"
)

var commentUpdatableColumns = []string{
	"content",
	"is_edited",
	"edited_at",
	"mentioned_users",
	"is_pinned",
	"pinned_at",
	"is_highlighted",
	"highlighted_at",
	"is_approved",
	"moderated_at",
	"moderated_by",
	"updated_at",
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := &model.Comment{}
	if err := m.FromDomain(c); err != nil {
		return fmt.Errorf("parsing comment: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			switch {
			case isUniqueViolation(err):
				return comment.ErrDuplicateComment
			case isForeignKeyViolation(err):
				return comment.ErrParentNotFound
			}
			return err
		}

		newComment := m.ToDomain()
		*c = *newComment

		return nil
	})
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	var m model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

// Update writes the mutable columns of c. The position of a comment in its
// tree never changes.
func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	m := &model.Comment{}
	if err := m.FromDomain(c); err != nil {
		return fmt.Errorf("parsing comment: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", m.ID).
		Select(commentUpdatableColumns).
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}

	c.UpdatedAt = m.UpdatedAt
	return nil
}

// Delete removes a single row. Rows that still have replies are refused by
// the parent_id foreign key.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return comment.ErrCommentNotFound
	}

	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.Comment{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return comment.ErrHasReplies
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

func (r *CommentRepository) List(ctx context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	db := r.db.WithContext(ctx)
	if filter.PostID != "" {
		db = db.Where("post_id = ?", filter.PostID)
	}
	if filter.AuthorID != "" {
		db = db.Where("author_id = ?", filter.AuthorID)
	}
	if filter.ParentID != "" {
		parentID, err := uuid.Parse(filter.ParentID)
		if err != nil {
			return []*domain.Comment{}, nil
		}
		db = db.Where("parent_id = ?", parentID)
	}
	if filter.RootsOnly {
		db = db.Where("parent_id IS NULL")
	}
	if filter.ApprovedOnly {
		db = db.Where("is_approved")
	}
	if filter.Query != "" {
		db = db.Where("content ILIKE ?", "%"+likePattern(filter.Query)+"%")
	}
	if !filter.Since.IsZero() {
		db = db.Where("created_at >= ?", filter.Since)
	}
	for _, o := range filter.OrderBy {
		db = addOrderBy(db, o, commentOrderColumns)
	}
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.Comment
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	comments := []*domain.Comment{}
	for _, m := range models {
		comments = append(comments, m.ToDomain())
	}
	return comments, nil
}

// ListDescendants relies on thread_path being collated byte-wise, so a
// prefix range scan returns the subtree in pre-order.
func (r *CommentRepository) ListDescendants(ctx context.Context, threadPath string, approvedOnly bool) ([]*domain.Comment, error) {
	db := r.db.WithContext(ctx).
		Where("thread_path LIKE ?", likePattern(domain.ThreadPrefix(threadPath))+"%")
	if approvedOnly {
		db = db.Where("is_approved")
	}

	var models []*model.Comment
	if err := db.Order("thread_path ASC").Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	comments := make([]*domain.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, m.ToDomain())
	}
	return comments, nil
}

type groupCount struct {
	Key   string
	Count int64
}

// TreeStats counts the stored replies of every stored comment, zero included,
// and the stored comments of every post that has any.
func (r *CommentRepository) TreeStats(ctx context.Context) (*domain.CommentTreeStats, error) {
	stats := &domain.CommentTreeStats{
		RepliesByComment: map[string]int64{},
		CommentsByPost:   map[string]int64{},
	}

	var replies []groupCount
	if err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.id::text AS key, COUNT(r.id) AS count").
		Joins("LEFT JOIN comments AS r ON r.parent_id = c.id").
		Group("c.id").
		Scan(&replies).Error; err != nil {
		return nil, fmt.Errorf("counting replies: %w", err)
	}
	for _, g := range replies {
		stats.RepliesByComment[g.Key] = g.Count
	}

	var comments []groupCount
	if err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("post_id AS key, COUNT(*) AS count").
		Group("post_id").
		Scan(&comments).Error; err != nil {
		return nil, fmt.Errorf("counting comments: %w", err)
	}
	for _, g := range comments {
		stats.CommentsByPost[g.Key] = g.Count
	}

	return stats, nil
}
