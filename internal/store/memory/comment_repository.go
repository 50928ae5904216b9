package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goto/engagement/core/comment"
	"github.com/goto/engagement/domain"
)

// CommentRepository keeps comments in process. It enforces the same
// constraints as the postgres schema: unique ids, parents that exist and
// parents that can't be deleted while they have replies.
type CommentRepository struct {
	mu       sync.RWMutex
	comments map[string]*domain.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: map[string]*domain.Comment{}}
}

func (r *CommentRepository) Create(_ context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.comments[c.ID]; exists {
		return comment.ErrDuplicateComment
	}
	if !c.IsRoot() {
		if _, exists := r.comments[*c.ParentID]; !exists {
			return comment.ErrParentNotFound
		}
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	r.comments[c.ID] = copyComment(c)
	return nil
}

func (r *CommentRepository) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.comments[id]
	if !exists {
		return nil, comment.ErrCommentNotFound
	}
	return copyComment(c), nil
}

// Update writes the mutable fields of c, its place in the tree is kept.
func (r *CommentRepository) Update(_ context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.comments[c.ID]
	if !exists {
		return comment.ErrCommentNotFound
	}

	updated := copyComment(stored)
	updated.Content = c.Content
	updated.IsEdited = c.IsEdited
	updated.EditedAt = c.EditedAt
	updated.MentionedUsers = append([]string(nil), c.MentionedUsers...)
	updated.IsPinned = c.IsPinned
	updated.PinnedAt = c.PinnedAt
	updated.IsHighlighted = c.IsHighlighted
	updated.HighlightedAt = c.HighlightedAt
	updated.IsApproved = c.IsApproved
	updated.ModeratedAt = c.ModeratedAt
	updated.ModeratedBy = c.ModeratedBy
	updated.UpdatedAt = time.Now()
	r.comments[c.ID] = updated

	c.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.comments[id]; !exists {
		return comment.ErrCommentNotFound
	}
	for _, c := range r.comments {
		if !c.IsRoot() && *c.ParentID == id {
			return comment.ErrHasReplies
		}
	}

	delete(r.comments, id)
	return nil
}

func (r *CommentRepository) List(_ context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	result := []*domain.Comment{}
	for _, c := range r.comments {
		switch {
		case filter.PostID != "" && c.PostID != filter.PostID,
			filter.AuthorID != "" && c.AuthorID != filter.AuthorID,
			filter.ParentID != "" && (c.IsRoot() || *c.ParentID != filter.ParentID),
			filter.RootsOnly && !c.IsRoot(),
			filter.ApprovedOnly && !c.IsApproved,
			query != "" && !strings.Contains(strings.ToLower(c.Content), query),
			!filter.Since.IsZero() && c.CreatedAt.Before(filter.Since):
			continue
		}
		result = append(result, copyComment(c))
	}

	sortComments(result, filter.OrderBy)
	return paginate(result, filter.Size, filter.Offset), nil
}

func (r *CommentRepository) ListDescendants(_ context.Context, threadPath string, approvedOnly bool) ([]*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := domain.ThreadPrefix(threadPath)
	result := []*domain.Comment{}
	for _, c := range r.comments {
		if !strings.HasPrefix(c.ThreadPath, prefix) || (approvedOnly && !c.IsApproved) {
			continue
		}
		result = append(result, copyComment(c))
	}

	sortComments(result, []string{"thread_path", "created_at"})
	return result, nil
}

func (r *CommentRepository) TreeStats(_ context.Context) (*domain.CommentTreeStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &domain.CommentTreeStats{
		RepliesByComment: map[string]int64{},
		CommentsByPost:   map[string]int64{},
	}
	for _, c := range r.comments {
		if _, seen := stats.RepliesByComment[c.ID]; !seen {
			stats.RepliesByComment[c.ID] = 0
		}
		if !c.IsRoot() {
			stats.RepliesByComment[*c.ParentID]++
		}
		stats.CommentsByPost[c.PostID]++
	}
	return stats, nil
}

// sortComments orders comments by "column[:desc]" expressions. Ties are
// broken by id, which follows creation order.
func sortComments(comments []*domain.Comment, orderBy []string) {
	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		for _, o := range orderBy {
			column, desc := parseOrder(o)
			cmp := compareColumn(a, b, column)
			if cmp == 0 {
				continue
			}
			if desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return a.ID < b.ID
	})
}

func parseOrder(orderBy string) (string, bool) {
	column, order, _ := strings.Cut(strings.ToLower(orderBy), ":")
	return column, order == "desc"
}

// compareColumn returns the sign of a-b on column. Unset times sort last in
// descending order, like NULLS LAST.
func compareColumn(a, b *domain.Comment, column string) int {
	switch column {
	case "created_at":
		return compareTime(a.CreatedAt, b.CreatedAt)
	case "updated_at":
		return compareTime(a.UpdatedAt, b.UpdatedAt)
	case "thread_path":
		return strings.Compare(a.ThreadPath, b.ThreadPath)
	case "is_pinned":
		return compareBool(a.IsPinned, b.IsPinned)
	case "pinned_at":
		return compareTimePtr(a.PinnedAt, b.PinnedAt)
	default:
		return 0
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return compareTime(*a, *b)
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func paginate[T any](list []T, size, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return list[:0]
		}
		list = list[offset:]
	}
	if size > 0 && size < len(list) {
		list = list[:size]
	}
	return list
}

func copyComment(c *domain.Comment) *domain.Comment {
	copied := *c
	if c.ParentID != nil {
		parentID := *c.ParentID
		copied.ParentID = &parentID
	}
	copied.MentionedUsers = append([]string(nil), c.MentionedUsers...)
	return &copied
}
