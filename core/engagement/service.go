package engagement

import (
	"context"
	"fmt"

	"github.com/goto/salt/audit"
	"golang.org/x/sync/errgroup"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/plugins/notifiers"
)

//go:generate mockery --name=commentService --exported --with-expecter
type commentService interface {
	Create(context.Context, *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	Edit(ctx context.Context, id, content string, mentions []string, actorID string) (*domain.Comment, error)
	Moderate(ctx context.Context, id string, m domain.CommentModeration) (*domain.Comment, error)
}

//go:generate mockery --name=reactionService --exported --with-expecter
type reactionService interface {
	React(ctx context.Context, userID string, target domain.ReactionTarget, reactionType domain.ReactionType) (*domain.Reaction, domain.ReactionAction, error)
	Unreact(ctx context.Context, userID string, target domain.ReactionTarget) (*domain.Reaction, domain.ReactionAction, error)
	Summary(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionSummary, error)
	UserReaction(ctx context.Context, userID string, target domain.ReactionTarget) (*domain.ReactionType, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	notifiers.Client
}

type CreateCommentInput struct {
	PostID         string   `json:"post_id" yaml:"post_id"`
	ParentID       *string  `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Content        string   `json:"content" yaml:"content"`
	MentionedUsers []string `json:"mentioned_users,omitempty" yaml:"mentioned_users,omitempty"`
}

// Service applies the caller's policy to comment and reaction requests
// before handing them to the comment tree and the reaction ledger. A request
// that fails a policy check mutates nothing.
type Service struct {
	comments  commentService
	reactions reactionService
	notifier  notifier
	logger    log.Logger
}

type ServiceDeps struct {
	CommentService  commentService
	ReactionService reactionService
	// Notifier is optional, no notifications are sent when nil.
	Notifier notifier
	Logger   log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		comments:  deps.CommentService,
		reactions: deps.ReactionService,
		notifier:  deps.Notifier,
		logger:    deps.Logger,
	}
}

func (s *Service) CreateComment(ctx context.Context, actor domain.Actor, policy domain.TargetPolicy, input CreateCommentInput) (*domain.Comment, error) {
	if err := checkViewer(actor); err != nil {
		return nil, err
	}
	if !policy.CommentsEnabled {
		return nil, ErrCommentsDisabled
	}
	ctx = withActor(ctx, actor.ID)

	c := &domain.Comment{
		AuthorID:       actor.ID,
		PostID:         input.PostID,
		ParentID:       input.ParentID,
		Content:        input.Content,
		MentionedUsers: input.MentionedUsers,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}

	s.notifyNewComment(ctx, c)
	return c, nil
}

// DeleteComment is allowed to the author of the comment and to moderators.
func (s *Service) DeleteComment(ctx context.Context, actor domain.Actor, commentID string) error {
	if actor.ID == "" {
		return ErrEmptyActor
	}

	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !c.IsAuthor(actor.ID) && !actor.CanModerate {
		return ErrPermissionDenied
	}

	return s.comments.Delete(withActor(ctx, actor.ID), commentID)
}

func (s *Service) EditComment(ctx context.Context, actor domain.Actor, commentID, content string, mentions []string) (*domain.Comment, error) {
	if err := checkViewer(actor); err != nil {
		return nil, err
	}

	return s.comments.Edit(withActor(ctx, actor.ID), commentID, content, mentions, actor.ID)
}

// React toggles the actor's reaction on target and returns the outcome with
// the target's reactions as they are after the change.
func (s *Service) React(ctx context.Context, actor domain.Actor, policy domain.TargetPolicy, target domain.ReactionTarget, reactionType domain.ReactionType) (*domain.ReactResult, error) {
	if err := s.checkReaction(ctx, actor, policy, target); err != nil {
		return nil, err
	}

	_, action, err := s.reactions.React(withActor(ctx, actor.ID), actor.ID, target, reactionType)
	if err != nil {
		return nil, err
	}

	return s.reactResult(ctx, actor.ID, target, action)
}

func (s *Service) Unreact(ctx context.Context, actor domain.Actor, policy domain.TargetPolicy, target domain.ReactionTarget) (*domain.ReactResult, error) {
	if err := s.checkReaction(ctx, actor, policy, target); err != nil {
		return nil, err
	}

	_, action, err := s.reactions.Unreact(withActor(ctx, actor.ID), actor.ID, target)
	if err != nil {
		return nil, err
	}

	return s.reactResult(ctx, actor.ID, target, action)
}

// PinComment is allowed to the owner of the post and to moderators.
func (s *Service) PinComment(ctx context.Context, actor domain.Actor, commentID string, pinned bool) (*domain.Comment, error) {
	if !actor.IsOwner && !actor.CanModerate {
		return nil, ErrPermissionDenied
	}
	return s.moderate(ctx, actor, commentID, domain.CommentModeration{IsPinned: &pinned})
}

// HighlightComment is allowed to the owner of the post and to moderators.
func (s *Service) HighlightComment(ctx context.Context, actor domain.Actor, commentID string, highlighted bool) (*domain.Comment, error) {
	if !actor.IsOwner && !actor.CanModerate {
		return nil, ErrPermissionDenied
	}
	return s.moderate(ctx, actor, commentID, domain.CommentModeration{IsHighlighted: &highlighted})
}

// ModerateComment approves or hides a comment. Only moderators may do it.
func (s *Service) ModerateComment(ctx context.Context, actor domain.Actor, commentID string, approved bool) (*domain.Comment, error) {
	if !actor.CanModerate {
		return nil, ErrPermissionDenied
	}
	return s.moderate(ctx, actor, commentID, domain.CommentModeration{IsApproved: &approved})
}

func (s *Service) moderate(ctx context.Context, actor domain.Actor, commentID string, m domain.CommentModeration) (*domain.Comment, error) {
	if actor.ID == "" {
		return nil, ErrEmptyActor
	}
	m.ModeratedBy = actor.ID
	return s.comments.Moderate(withActor(ctx, actor.ID), commentID, m)
}

func (s *Service) checkReaction(ctx context.Context, actor domain.Actor, policy domain.TargetPolicy, target domain.ReactionTarget) error {
	if err := checkViewer(actor); err != nil {
		return err
	}
	if !policy.ReactionsEnabled {
		return ErrReactionsDisabled
	}

	if target.Type == domain.TargetTypeComment {
		if _, err := s.comments.GetByID(ctx, target.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) reactResult(ctx context.Context, userID string, target domain.ReactionTarget, action domain.ReactionAction) (*domain.ReactResult, error) {
	result := &domain.ReactResult{Action: action}

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		summary, err := s.reactions.Summary(egctx, target)
		if err != nil {
			return fmt.Errorf("getting reaction summary: %w", err)
		}
		result.Reactions = summary
		return nil
	})
	eg.Go(func() error {
		userReaction, err := s.reactions.UserReaction(egctx, userID, target)
		if err != nil {
			return fmt.Errorf("getting user reaction: %w", err)
		}
		result.UserReaction = userReaction
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// notifyNewComment tells the mentioned users and the author of the parent
// comment about c. Nobody is notified twice or about their own comment.
func (s *Service) notifyNewComment(ctx context.Context, c *domain.Comment) {
	if s.notifier == nil {
		return
	}

	c = copyComment(c)
	go func() {
		ctx := context.WithoutCancel(ctx)
		variables := map[string]interface{}{
			"comment_id":     c.ID,
			"comment_author": c.AuthorID,
			"post_id":        c.PostID,
			"content":        c.Content,
		}

		notified := map[string]bool{c.AuthorID: true}
		var notifications []domain.Notification
		for _, user := range c.MentionedUsers {
			if notified[user] {
				continue
			}
			notified[user] = true
			notifications = append(notifications, domain.Notification{
				User:   user,
				Labels: map[string]string{"comment_id": c.ID, "post_id": c.PostID},
				Message: domain.NotificationMessage{
					Type:      domain.NotificationTypeCommentMention,
					Variables: variables,
				},
			})
		}

		if !c.IsRoot() {
			parent, err := s.comments.GetByID(ctx, *c.ParentID)
			if err != nil {
				s.logger.Error(ctx, "failed to get parent comment for notification", "error", err, "comment_id", c.ID)
			} else if !notified[parent.AuthorID] {
				notifications = append(notifications, domain.Notification{
					User:   parent.AuthorID,
					Labels: map[string]string{"comment_id": c.ID, "post_id": c.PostID, "parent_id": parent.ID},
					Message: domain.NotificationMessage{
						Type:      domain.NotificationTypeCommentReply,
						Variables: variables,
					},
				})
			}
		}

		if len(notifications) == 0 {
			return
		}
		if errs := s.notifier.Notify(ctx, notifications); errs != nil {
			for _, err := range errs {
				s.logger.Error(ctx, "failed to send notification", "error", err, "comment_id", c.ID)
			}
		}
	}()
}

func checkViewer(actor domain.Actor) error {
	if actor.ID == "" {
		return ErrEmptyActor
	}
	if !actor.CanView {
		return ErrPermissionDenied
	}
	return nil
}

func copyComment(c *domain.Comment) *domain.Comment {
	copied := *c
	copied.MentionedUsers = append([]string(nil), c.MentionedUsers...)
	return &copied
}

// withActor attributes audit logs and log entries of ctx to actorID
func withActor(ctx context.Context, actorID string) context.Context {
	return log.WithValue(audit.WithActor(ctx, actorID), "actor", actorID)
}
