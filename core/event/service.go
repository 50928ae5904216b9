package event

import (
	"context"
	"fmt"

	"github.com/goto/salt/audit"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
)

const defaultActivitySize = 50

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	List(context.Context, *domain.ListAuditLogFilter) ([]*audit.Log, error)
}

// Service reads the history of comments and reaction targets back from
// the audit log.
type Service struct {
	repo repository
	log  log.Logger
}

func NewService(repo repository, log log.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error) {
	logs, err := s.repo.List(ctx, toAuditLogFilter(filter))
	if err != nil {
		return nil, err
	}

	events := make([]*domain.Event, 0, len(logs))
	for _, l := range logs {
		e := new(domain.Event)
		if err := e.FromAuditLog(l); err != nil {
			s.log.Warn(ctx, "skipping unparseable audit log", "action", l.Action, "error", err)
			continue
		}
		events = append(events, e)
	}

	return events, nil
}

// CommentHistory lists every recorded change of a comment, newest first.
func (s *Service) CommentHistory(ctx context.Context, commentID string) ([]*domain.Event, error) {
	if commentID == "" {
		return nil, fmt.Errorf("%w: comment id can't be empty", domain.ErrValidation)
	}
	return s.List(ctx, &domain.ListEventsFilter{
		ParentType: domain.EventParentTypeComment,
		ParentID:   commentID,
	})
}

// TargetHistory lists the reactions added, changed and withdrawn on target.
func (s *Service) TargetHistory(ctx context.Context, target domain.ReactionTarget) ([]*domain.Event, error) {
	if target.ID == "" || !target.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid reaction target %q", domain.ErrValidation, target.String())
	}
	return s.List(ctx, &domain.ListEventsFilter{
		ParentType: domain.EventParentTypeReaction,
		ParentID:   target.ID,
		TargetType: target.Type,
	})
}

func (s *Service) ActorActivity(ctx context.Context, actor string, size, offset int) ([]*domain.Event, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: actor can't be empty", domain.ErrValidation)
	}
	if size <= 0 {
		size = defaultActivitySize
	}
	return s.List(ctx, &domain.ListEventsFilter{
		Actor:  actor,
		Size:   size,
		Offset: offset,
	})
}

func toAuditLogFilter(filter *domain.ListEventsFilter) *domain.ListAuditLogFilter {
	if filter == nil {
		return nil
	}

	f := &domain.ListAuditLogFilter{
		Actions:    filter.Types,
		TargetType: string(filter.TargetType),
		Actor:      filter.Actor,
		Since:      filter.Since,
		Size:       filter.Size,
		Offset:     filter.Offset,
	}
	switch filter.ParentType {
	case domain.EventParentTypeComment:
		f.CommentID = filter.ParentID
	case domain.EventParentTypeReaction:
		f.TargetID = filter.ParentID
	}
	return f
}
