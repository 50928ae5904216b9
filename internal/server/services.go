package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/goto/engagement/core/comment"
	"github.com/goto/engagement/core/counter"
	"github.com/goto/engagement/core/engagement"
	"github.com/goto/engagement/core/event"
	"github.com/goto/engagement/core/reaction"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store"
	"github.com/goto/engagement/internal/store/memory"
	"github.com/goto/engagement/internal/store/postgres"
	"github.com/goto/engagement/internal/store/redis"
	"github.com/goto/engagement/pkg/audit"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/plugins/notifiers"
)

const AppName = "engagement"

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate
}

type Services struct {
	CounterService    *counter.Service
	CommentService    *comment.Service
	ReactionService   *reaction.Service
	EngagementService *engagement.Service
	// EventService is nil when nothing is persisted in postgres
	EventService *event.Service

	closers []func() error
}

// Close releases every connection opened by InitServices
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type commentRepository interface {
	Create(context.Context, *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Update(context.Context, *domain.Comment) error
	Delete(ctx context.Context, id string) error
	List(context.Context, domain.ListCommentsFilter) ([]*domain.Comment, error)
	ListDescendants(ctx context.Context, threadPath string, approvedOnly bool) ([]*domain.Comment, error)
	TreeStats(context.Context) (*domain.CommentTreeStats, error)
}

type reactionRepository interface {
	Upsert(ctx context.Context, key domain.ReactionKey, apply func(*domain.Reaction) domain.ReactionAction) (*domain.Reaction, domain.ReactionAction, error)
	Get(ctx context.Context, key domain.ReactionKey) (*domain.Reaction, error)
	Summary(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionSummary, error)
	List(context.Context, domain.ListReactionsFilter) ([]*domain.Reaction, error)
	Popular(ctx context.Context, since time.Time, targetType domain.TargetType, limit int) ([]*domain.PopularTarget, error)
	Stats(ctx context.Context, since time.Time, targetType domain.TargetType) ([]*domain.ReactionStat, error)
	TargetLikes(context.Context) ([]*domain.TargetLikes, error)
}

type counterRepository interface {
	Increment(ctx context.Context, key domain.CounterKey, delta int64) (int64, error)
	Get(ctx context.Context, keys []domain.CounterKey) (domain.CounterValues, error)
	CompareAndSet(ctx context.Context, key domain.CounterKey, current, value int64) (bool, error)
	Delete(ctx context.Context, keys []domain.CounterKey) error
}

func InitServices(ctx context.Context, deps ServiceDeps) (*Services, error) {
	cfg := deps.Config
	if err := deps.Validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	services := &Services{}
	success := false
	defer func() {
		if !success {
			services.Close()
		}
	}()

	var (
		commentRepo  commentRepository
		reactionRepo reactionRepository
		auditLogger  = audit.NewNoop()
		pgStore      *postgres.Store
	)
	switch cfg.DB.Driver {
	case store.StorageDriverMemory:
		deps.Logger.Warn(ctx, "using in memory storage, data is lost on exit")
		commentRepo = memory.NewCommentRepository()
		reactionRepo = memory.NewReactionRepository()
	default:
		var err error
		pgStore, err = postgres.NewStore(&cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("initializing store: %w", err)
		}
		services.closers = append(services.closers, pgStore.Close)

		commentRepo = postgres.NewCommentRepository(pgStore.DB())
		reactionRepo = postgres.NewReactionRepository(pgStore.DB())
		services.EventService = event.NewService(postgres.NewAuditLogRepository(pgStore.DB()), deps.Logger)

		if !cfg.AuditLogDisabled {
			sqlDB, err := pgStore.DB().DB()
			if err != nil {
				return nil, err
			}
			auditLogger, err = audit.NewPostgresLogger(ctx, sqlDB, AppName, cfg.Telemetry.ServiceVersion)
			if err != nil {
				return nil, fmt.Errorf("initializing audit logger: %w", err)
			}
		}
	}

	counterRepo, err := initCounterRepository(cfg.Counter, pgStore, services)
	if err != nil {
		return nil, err
	}
	services.CounterService = counter.NewService(counter.ServiceDeps{
		Repository: counterRepo,
		Logger:     deps.Logger,
	})

	var holdRule *comment.HoldRule
	if cfg.Comment.HoldExpression != "" {
		holdRule, err = comment.NewHoldRule(cfg.Comment.HoldExpression)
		if err != nil {
			return nil, err
		}
	}
	services.CommentService = comment.NewService(comment.ServiceDeps{
		Repository:  commentRepo,
		Counter:     services.CounterService,
		AuditLogger: auditLogger,
		Logger:      deps.Logger,
		Config:      cfg.Comment,
		HoldRule:    holdRule,
	})
	services.ReactionService = reaction.NewService(reaction.ServiceDeps{
		Repository:  reactionRepo,
		Counter:     services.CounterService,
		AuditLogger: auditLogger,
		Logger:      deps.Logger,
		Config:      cfg.Reaction,
	})

	engagementDeps := engagement.ServiceDeps{
		CommentService:  services.CommentService,
		ReactionService: services.ReactionService,
		Logger:          deps.Logger,
	}
	if cfg.Notifier.Provider != "" {
		notifier, err := notifiers.NewClient(&cfg.Notifier, deps.Logger)
		if err != nil {
			return nil, fmt.Errorf("initializing notifier: %w", err)
		}
		engagementDeps.Notifier = notifier
	}
	services.EngagementService = engagement.NewService(engagementDeps)

	success = true
	return services, nil
}

func initCounterRepository(cfg store.CounterConfig, pgStore *postgres.Store, services *Services) (counterRepository, error) {
	switch cfg.Driver {
	case store.CounterDriverRedis:
		counterStore, err := redis.NewCounterStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis counter store: %w", err)
		}
		services.closers = append(services.closers, counterStore.Close)
		return counterStore, nil
	case store.CounterDriverMemory:
		return memory.NewCounterRepository(), nil
	default:
		if pgStore == nil {
			return nil, fmt.Errorf("counter driver %q requires the postgres storage driver", cfg.Driver)
		}
		return postgres.NewCounterRepository(pgStore.DB()), nil
	}
}
