package comment

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/diff"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/pkg/slices"
)

const (
	AuditKeyCreate   = "comment.create"
	AuditKeyEdit     = "comment.edit"
	AuditKeyDelete   = "comment.delete"
	AuditKeyModerate = "comment.moderate"

	defaultPageSize = 20
)

var TimeNow = time.Now

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Update(context.Context, *domain.Comment) error
	Delete(ctx context.Context, id string) error
	List(context.Context, domain.ListCommentsFilter) ([]*domain.Comment, error)
	// ListDescendants returns every comment below threadPath in path order.
	ListDescendants(ctx context.Context, threadPath string, approvedOnly bool) ([]*domain.Comment, error)
	TreeStats(context.Context) (*domain.CommentTreeStats, error)
}

//go:generate mockery --name=counterService --exported --with-expecter
type counterService interface {
	Increment(ctx context.Context, key domain.CounterKey, delta int64) (int64, error)
	Get(ctx context.Context, keys []domain.CounterKey) (domain.CounterValues, error)
	Delete(ctx context.Context, keys []domain.CounterKey) error
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type Service struct {
	repo        repository
	counter     counterService
	auditLogger auditLogger
	logger      log.Logger

	maxDepth int
	holdRule *HoldRule
	// htmlPolicy is nil when comments are plain text
	htmlPolicy *bluemonday.Policy
	metric     metric.Int64Counter
}

type ServiceDeps struct {
	Repository  repository
	Counter     counterService
	AuditLogger auditLogger
	Logger      log.Logger

	Config Config
	// HoldRule is optional, every comment is approved when nil.
	HoldRule *HoldRule
}

func NewService(deps ServiceDeps) *Service {
	maxDepth := deps.Config.MaxDepth
	if maxDepth <= 0 || maxDepth > domain.MaxCommentDepth {
		maxDepth = domain.MaxCommentDepth
	}

	var htmlPolicy *bluemonday.Policy
	if deps.Config.AllowHTML {
		htmlPolicy = bluemonday.UGCPolicy()
	}

	commentsMetric, _ := otel.Meter("github.com/goto/engagement/core/comment").
		Int64Counter("engagement.comments", metric.WithDescription("number of comment mutations"))

	return &Service{
		repo:        deps.Repository,
		counter:     deps.Counter,
		auditLogger: deps.AuditLogger,
		logger:      deps.Logger,
		maxDepth:    maxDepth,
		holdRule:    deps.HoldRule,
		htmlPolicy:  htmlPolicy,
		metric:      commentsMetric,
	}
}

// Create places c in its post's tree and bumps the parent's replies_count
// and the post's comments_count. Counters are not touched if the row can't
// be stored.
func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	if c.AuthorID == "" {
		return ErrEmptyAuthor
	}
	if c.PostID == "" {
		return ErrEmptyPostID
	}

	content, err := s.normalizeContent(c.Content)
	if err != nil {
		return err
	}
	mentions, err := standardizeMentions(c.MentionedUsers)
	if err != nil {
		return err
	}

	var parent *domain.Comment
	if !c.IsRoot() {
		parent, err = s.repo.GetByID(ctx, *c.ParentID)
		if err != nil {
			if errors.Is(err, ErrCommentNotFound) {
				return ErrParentNotFound
			}
			return fmt.Errorf("getting parent comment %q: %w", *c.ParentID, err)
		}
		if parent.PostID != c.PostID {
			return ErrParentNotFound
		}
		if parent.Depth >= s.maxDepth {
			return ErrDepthExceeded
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating comment id: %w", err)
	}

	*c = domain.Comment{
		ID:             id.String(),
		AuthorID:       c.AuthorID,
		PostID:         c.PostID,
		Content:        content,
		MentionedUsers: mentions,
		IsApproved:     true,
	}
	c.PlaceUnder(parent)

	if s.holdRule != nil {
		hold, err := s.holdRule.ShouldHold(c)
		if err != nil {
			return err
		}
		c.IsApproved = !hold
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}

	if parent != nil {
		s.incrementCounter(ctx, domain.RepliesCountKey(parent.ID), 1)
	}
	s.incrementCounter(ctx, domain.CommentsCountKey(c.PostID), 1)
	s.record(ctx, "create")

	s.logger.Info(ctx, "comment created", "comment_id", c.ID, "post_id", c.PostID, "depth", c.Depth, "approved", c.IsApproved)
	s.logAsync(ctx, AuditKeyCreate, map[string]interface{}{
		"comment_id": c.ID,
		"post_id":    c.PostID,
		"parent_id":  parentIDOf(c),
		"author_id":  c.AuthorID,
		"depth":      c.Depth,
	})

	return nil
}

// Delete removes a comment together with its replies. Rows are removed
// deepest first, each one decrementing its own parent's replies_count and
// the post's comments_count. Deletion stops at the first row that can't be
// removed, e.g. on ErrHasReplies when a reply lands meanwhile, and the rows
// removed before it stay removed with their counters corrected. Retrying
// removes the rest.
func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	descendants, err := s.repo.ListDescendants(ctx, c.ThreadPath, false)
	if err != nil {
		return fmt.Errorf("listing replies of comment %q: %w", id, err)
	}

	subtree := append(descendants, c)
	sort.SliceStable(subtree, func(i, j int) bool {
		if subtree[i].Depth != subtree[j].Depth {
			return subtree[i].Depth > subtree[j].Depth
		}
		return subtree[i].ThreadPath > subtree[j].ThreadPath
	})

	deleted := 0
	for _, node := range subtree {
		if err := s.repo.Delete(ctx, node.ID); err != nil {
			return fmt.Errorf("deleting comment %q after removing %d of %d rows of its subtree: %w", node.ID, deleted, len(subtree), err)
		}
		deleted++

		if !node.IsRoot() {
			s.incrementCounter(ctx, domain.RepliesCountKey(*node.ParentID), -1)
		}
		s.incrementCounter(ctx, domain.CommentsCountKey(node.PostID), -1)

		staleKeys := []domain.CounterKey{
			domain.RepliesCountKey(node.ID),
			domain.LikesCountKey(domain.TargetTypeComment, node.ID),
		}
		if err := s.counter.Delete(ctx, staleKeys); err != nil {
			s.logger.Warn(ctx, "failed to delete counters of deleted comment", "comment_id", node.ID, "error", err)
		}
		s.record(ctx, "delete")
	}

	s.logger.Info(ctx, "comment deleted", "comment_id", c.ID, "post_id", c.PostID, "deleted_rows", len(subtree))
	s.logAsync(ctx, AuditKeyDelete, map[string]interface{}{
		"comment_id":   c.ID,
		"post_id":      c.PostID,
		"deleted_rows": len(subtree),
	})

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.hydrate(ctx, []*domain.Comment{c})
	return c, nil
}

// GetReplies returns the approved direct replies of a comment, oldest first.
func (s *Service) GetReplies(ctx context.Context, id string, limit, offset int) ([]*domain.Comment, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.list(ctx, domain.ListCommentsFilter{
		ParentID:     id,
		ApprovedOnly: true,
		Size:         pageSize(limit),
		Offset:       offset,
		OrderBy:      []string{"created_at"},
	})
}

// GetThread returns an approved comment followed by its approved
// descendants in pre-order. A comment held or hidden by moderation is not
// found.
func (s *Service) GetThread(ctx context.Context, id string) ([]*domain.Comment, error) {
	root, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !root.IsApproved {
		return nil, ErrCommentNotFound
	}

	descendants, err := s.repo.ListDescendants(ctx, root.ThreadPath, true)
	if err != nil {
		return nil, fmt.Errorf("listing thread of comment %q: %w", id, err)
	}

	thread := append([]*domain.Comment{root}, descendants...)
	s.hydrate(ctx, thread)
	return thread, nil
}

// GetTopLevel returns the approved root comments of a post, pinned ones
// first.
func (s *Service) GetTopLevel(ctx context.Context, postID string, limit, offset int) ([]*domain.Comment, error) {
	if postID == "" {
		return nil, ErrEmptyPostID
	}

	return s.list(ctx, domain.ListCommentsFilter{
		PostID:       postID,
		RootsOnly:    true,
		ApprovedOnly: true,
		Size:         pageSize(limit),
		Offset:       offset,
		OrderBy:      []string{"is_pinned:desc", "pinned_at:desc", "created_at"},
	})
}

// ListByPost returns every approved comment of a post in thread order.
func (s *Service) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	if postID == "" {
		return nil, ErrEmptyPostID
	}

	return s.list(ctx, domain.ListCommentsFilter{
		PostID:       postID,
		ApprovedOnly: true,
		OrderBy:      []string{"thread_path", "created_at"},
	})
}

func (s *Service) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*domain.Comment, error) {
	if authorID == "" {
		return nil, ErrEmptyAuthor
	}

	return s.list(ctx, domain.ListCommentsFilter{
		AuthorID: authorID,
		Size:     pageSize(limit),
		Offset:   offset,
		OrderBy:  []string{"created_at:desc"},
	})
}

// ListRecent returns the newest approved comments across posts created
// after since. A zero since means no lower bound.
func (s *Service) ListRecent(ctx context.Context, since time.Time, limit int) ([]*domain.Comment, error) {
	return s.list(ctx, domain.ListCommentsFilter{
		ApprovedOnly: true,
		Since:        since,
		Size:         pageSize(limit),
		OrderBy:      []string{"created_at:desc"},
	})
}

// Search matches approved comments containing query, optionally within a
// single post.
func (s *Service) Search(ctx context.Context, query, postID string, limit, offset int) ([]*domain.Comment, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	return s.list(ctx, domain.ListCommentsFilter{
		PostID:       postID,
		Query:        query,
		ApprovedOnly: true,
		Size:         pageSize(limit),
		Offset:       offset,
		OrderBy:      []string{"created_at:desc"},
	})
}

// Edit replaces the content of a comment. A nil mentions keeps the current
// mentioned users.
func (s *Service) Edit(ctx context.Context, id, content string, mentions []string, actorID string) (*domain.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsAuthor(actorID) {
		return nil, ErrPermissionDenied
	}

	normalized, err := s.normalizeContent(content)
	if err != nil {
		return nil, err
	}

	before := *c
	now := TimeNow()
	c.Content = normalized
	c.IsEdited = true
	c.EditedAt = &now
	if mentions != nil {
		if c.MentionedUsers, err = standardizeMentions(mentions); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating comment %q: %w", id, err)
	}
	s.record(ctx, "edit")

	s.logChanges(ctx, AuditKeyEdit, actorID, &before, c)
	s.hydrate(ctx, []*domain.Comment{c})
	return c, nil
}

// Moderate applies the non-nil flags of m to a comment and stamps when and
// by whom it happened.
func (s *Service) Moderate(ctx context.Context, id string, m domain.CommentModeration) (*domain.Comment, error) {
	if m.IsPinned == nil && m.IsHighlighted == nil && m.IsApproved == nil {
		return nil, ErrEmptyModeration
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *c
	now := TimeNow()
	if m.IsPinned != nil {
		c.IsPinned = *m.IsPinned
		c.PinnedAt = nil
		if c.IsPinned {
			c.PinnedAt = &now
		}
	}
	if m.IsHighlighted != nil {
		c.IsHighlighted = *m.IsHighlighted
		c.HighlightedAt = nil
		if c.IsHighlighted {
			c.HighlightedAt = &now
		}
	}
	if m.IsApproved != nil {
		c.IsApproved = *m.IsApproved
	}
	c.ModeratedAt = &now
	c.ModeratedBy = m.ModeratedBy

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating comment %q: %w", id, err)
	}
	s.record(ctx, "moderate")

	s.logChanges(ctx, AuditKeyModerate, m.ModeratedBy, &before, c)
	s.hydrate(ctx, []*domain.Comment{c})
	return c, nil
}

func (s *Service) SetPinned(ctx context.Context, id string, pinned bool, moderatorID string) (*domain.Comment, error) {
	return s.Moderate(ctx, id, domain.CommentModeration{IsPinned: &pinned, ModeratedBy: moderatorID})
}

func (s *Service) SetHighlighted(ctx context.Context, id string, highlighted bool, moderatorID string) (*domain.Comment, error) {
	return s.Moderate(ctx, id, domain.CommentModeration{IsHighlighted: &highlighted, ModeratedBy: moderatorID})
}

func (s *Service) SetApproval(ctx context.Context, id string, approved bool, moderatorID string) (*domain.Comment, error) {
	return s.Moderate(ctx, id, domain.CommentModeration{IsApproved: &approved, ModeratedBy: moderatorID})
}

func (s *Service) AddMention(ctx context.Context, id, userID string) (*domain.Comment, error) {
	return s.updateMentions(ctx, id, func(current []string) []string {
		return append(current, userID)
	})
}

func (s *Service) RemoveMention(ctx context.Context, id, userID string) (*domain.Comment, error) {
	return s.updateMentions(ctx, id, func(current []string) []string {
		return slices.GenericsSliceWithout(current, userID)
	})
}

// RenderHTML returns the content of c ready to embed in an html page.
func (s *Service) RenderHTML(c *domain.Comment) string {
	if s.htmlPolicy == nil {
		return html.EscapeString(c.Content)
	}
	return s.htmlPolicy.Sanitize(c.Content)
}

// TreeStats counts replies per comment and comments per post from the
// stored rows.
func (s *Service) TreeStats(ctx context.Context) (*domain.CommentTreeStats, error) {
	stats, err := s.repo.TreeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing comment tree stats: %w", err)
	}
	return stats, nil
}

func (s *Service) updateMentions(ctx context.Context, id string, update func([]string) []string) (*domain.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mentions, err := standardizeMentions(update(append([]string{}, c.MentionedUsers...)))
	if err != nil {
		return nil, err
	}
	c.MentionedUsers = mentions

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating comment %q: %w", id, err)
	}
	s.hydrate(ctx, []*domain.Comment{c})
	return c, nil
}

func (s *Service) list(ctx context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	comments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	s.hydrate(ctx, comments)
	return comments, nil
}

// hydrate fills the counters of comments from the counter store with a
// single read. Counts are left as the repository returned them, zero for
// stored rows, when the counter store can't be reached.
func (s *Service) hydrate(ctx context.Context, comments []*domain.Comment) {
	if len(comments) == 0 {
		return
	}

	keys := make([]domain.CounterKey, 0, len(comments)*2)
	for _, c := range comments {
		keys = append(keys,
			domain.RepliesCountKey(c.ID),
			domain.LikesCountKey(domain.TargetTypeComment, c.ID),
		)
	}

	values, err := s.counter.Get(ctx, keys)
	if err != nil {
		s.logger.Warn(ctx, "failed to read comment counters", "error", err, "comments", len(comments))
		return
	}
	for _, c := range comments {
		c.RepliesCount = values.Of(domain.RepliesCountKey(c.ID))
		c.LikesCount = values.Of(domain.LikesCountKey(domain.TargetTypeComment, c.ID))
	}
}

func (s *Service) incrementCounter(ctx context.Context, key domain.CounterKey, delta int64) {
	if _, err := s.counter.Increment(ctx, key, delta); err != nil {
		s.logger.Warn(ctx, "counter is stale after failed increment", "key", key.String(), "delta", delta, "error", err)
	}
}

// normalizeContent checks the length of content as written by the author.
// Plain text is kept as is and only escaped by RenderHTML. With html
// allowed, unsafe markup is dropped and content left with nothing visible
// is rejected.
func (s *Service) normalizeContent(content string) (string, error) {
	if n := utf8.RuneCountInString(content); n == 0 || n > domain.MaxCommentLength || strings.TrimSpace(content) == "" {
		return "", ErrInvalidContent
	}
	if s.htmlPolicy == nil {
		return content, nil
	}

	sanitized := s.htmlPolicy.Sanitize(content)
	if strings.TrimSpace(sanitized) == "" {
		return "", ErrInvalidContent
	}
	return sanitized, nil
}

func (s *Service) record(ctx context.Context, action string) {
	if s.metric != nil {
		s.metric.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
	}
}

func (s *Service) logChanges(ctx context.Context, action, actor string, before, after *domain.Comment) {
	changes, err := diff.GetChangelog(actor, before, after)
	if err != nil {
		s.logger.Error(ctx, "failed to compute comment changelog", "error", err, "comment_id", after.ID)
		return
	}

	s.logAsync(ctx, action, map[string]interface{}{
		"comment_id": after.ID,
		"post_id":    after.PostID,
		"changes":    changes,
	})
}

func (s *Service) logAsync(ctx context.Context, action string, data map[string]interface{}) {
	if s.auditLogger == nil {
		return
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, action, data); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "action", action, "comment_id", data["comment_id"])
		}
	}()
}

func standardizeMentions(mentions []string) ([]string, error) {
	standardized := slices.GenericsStandardizeSlice(mentions)
	if len(standardized) > domain.MaxMentionedUsers {
		return nil, ErrTooManyMentions
	}
	return standardized, nil
}

func parentIDOf(c *domain.Comment) string {
	if c.IsRoot() {
		return ""
	}
	return *c.ParentID
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return limit
}
