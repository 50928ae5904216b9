package reaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
)

const (
	AuditKeyReact   = "reaction.react"
	AuditKeyUnreact = "reaction.unreact"

	defaultPageSize    = 20
	defaultPopularSize = 10
)

var TimeNow = time.Now

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	// Upsert runs apply on the locked ledger row of key, or on a new inactive
	// reaction if there is none, and stores the outcome atomically.
	Upsert(ctx context.Context, key domain.ReactionKey, apply func(*domain.Reaction) domain.ReactionAction) (*domain.Reaction, domain.ReactionAction, error)
	Get(ctx context.Context, key domain.ReactionKey) (*domain.Reaction, error)
	Summary(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionSummary, error)
	List(context.Context, domain.ListReactionsFilter) ([]*domain.Reaction, error)
	Popular(ctx context.Context, since time.Time, targetType domain.TargetType, limit int) ([]*domain.PopularTarget, error)
	Stats(ctx context.Context, since time.Time, targetType domain.TargetType) ([]*domain.ReactionStat, error)
	TargetLikes(context.Context) ([]*domain.TargetLikes, error)
}

//go:generate mockery --name=counterService --exported --with-expecter
type counterService interface {
	Increment(ctx context.Context, key domain.CounterKey, delta int64) (int64, error)
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type Config struct {
	// ReportCacheTTL keeps Popular and Stats results in memory. Zero
	// disables the cache. Summary is always read from the ledger.
	ReportCacheTTL     time.Duration `mapstructure:"report_cache_ttl" yaml:"report_cache_ttl"`
	ReportCacheCleanup time.Duration `mapstructure:"report_cache_cleanup" yaml:"report_cache_cleanup" default:"5m"`
}

type Service struct {
	repo        repository
	counter     counterService
	auditLogger auditLogger
	logger      log.Logger

	reportCache *cache.Cache
	metric      metric.Int64Counter
}

type ServiceDeps struct {
	Repository  repository
	Counter     counterService
	AuditLogger auditLogger
	Logger      log.Logger

	Config Config
}

func NewService(deps ServiceDeps) *Service {
	var reportCache *cache.Cache
	if deps.Config.ReportCacheTTL > 0 {
		reportCache = cache.New(deps.Config.ReportCacheTTL, deps.Config.ReportCacheCleanup)
	}

	reactionsMetric, _ := otel.Meter("github.com/goto/engagement/core/reaction").
		Int64Counter("engagement.reactions", metric.WithDescription("number of reaction requests by outcome"))

	return &Service{
		repo:         deps.Repository,
		counter:      deps.Counter,
		auditLogger:  deps.AuditLogger,
		logger:       deps.Logger,
		reportCache: reportCache,
		metric:      reactionsMetric,
	}
}

// React toggles the reaction of a user on a target: a new or inactive
// reaction is added, the active type is removed and a different type
// replaces the active one. The target's likes_count follows the number of
// active reactions.
func (s *Service) React(ctx context.Context, userID string, target domain.ReactionTarget, reactionType domain.ReactionType) (*domain.Reaction, domain.ReactionAction, error) {
	if err := validateKey(userID, target); err != nil {
		return nil, "", err
	}
	if !reactionType.IsValid() {
		return nil, "", fmt.Errorf("%w %q", ErrInvalidReactionType, reactionType)
	}

	return s.apply(ctx, AuditKeyReact, userID, target, func(r *domain.Reaction) domain.ReactionAction {
		return r.Toggle(reactionType)
	})
}

// Unreact removes the active reaction of a user on a target whatever its
// type. The action is not_found when there is nothing to remove.
func (s *Service) Unreact(ctx context.Context, userID string, target domain.ReactionTarget) (*domain.Reaction, domain.ReactionAction, error) {
	if err := validateKey(userID, target); err != nil {
		return nil, "", err
	}

	return s.apply(ctx, AuditKeyUnreact, userID, target, func(r *domain.Reaction) domain.ReactionAction {
		return r.Withdraw()
	})
}

// Summary counts the active reactions of a target by type. It reflects
// every reaction committed before the call.
func (s *Service) Summary(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionSummary, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	summary, err := s.repo.Summary(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("getting reaction summary of %q: %w", target, err)
	}
	return summary, nil
}

// UserReaction returns the active reaction type of a user on a target, or
// nil when there is none.
func (s *Service) UserReaction(ctx context.Context, userID string, target domain.ReactionTarget) (*domain.ReactionType, error) {
	if err := validateKey(userID, target); err != nil {
		return nil, err
	}

	r, err := s.repo.Get(ctx, domain.ReactionKey{UserID: userID, Target: target})
	if err != nil {
		if errors.Is(err, ErrReactionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting reaction of %q on %q: %w", userID, target, err)
	}
	if !r.IsActive {
		return nil, nil
	}

	reactionType := r.ReactionType
	return &reactionType, nil
}

// ListReactors returns the active reactions on a target, newest first.
func (s *Service) ListReactors(ctx context.Context, target domain.ReactionTarget, limit, offset int) ([]*domain.Reaction, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, domain.ListReactionsFilter{
		TargetID:   target.ID,
		TargetType: target.Type,
		Size:       pageSize(limit, defaultPageSize),
		Offset:     offset,
	})
}

// ListByUser returns the active reactions of a user, optionally of a single
// type, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string, reactionType domain.ReactionType, limit, offset int) ([]*domain.Reaction, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if reactionType != "" && !reactionType.IsValid() {
		return nil, fmt.Errorf("%w %q", ErrInvalidReactionType, reactionType)
	}

	return s.repo.List(ctx, domain.ListReactionsFilter{
		UserID:       userID,
		ReactionType: reactionType,
		Size:         pageSize(limit, defaultPageSize),
		Offset:       offset,
	})
}

// Popular ranks targets by active reactions created within timeframe. An
// empty targetType ranks targets of every type. Rankings may be served from
// the report cache.
func (s *Service) Popular(ctx context.Context, timeframe domain.Timeframe, targetType domain.TargetType, limit int) ([]*domain.PopularTarget, error) {
	since, err := s.since(timeframe, targetType)
	if err != nil {
		return nil, err
	}

	limit = pageSize(limit, defaultPopularSize)
	cacheKey := fmt.Sprintf("popular:%s:%s:%d", timeframe, targetType, limit)
	if cached, found := s.cachedReport(cacheKey); found {
		return cached.([]*domain.PopularTarget), nil
	}

	popular, err := s.repo.Popular(ctx, since, targetType, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking popular targets: %w", err)
	}
	s.cacheReport(cacheKey, popular)
	return popular, nil
}

// Stats counts active reactions created within timeframe by reaction and
// target type. Counts may be served from the report cache.
func (s *Service) Stats(ctx context.Context, timeframe domain.Timeframe, targetType domain.TargetType) ([]*domain.ReactionStat, error) {
	since, err := s.since(timeframe, targetType)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("stats:%s:%s", timeframe, targetType)
	if cached, found := s.cachedReport(cacheKey); found {
		return cached.([]*domain.ReactionStat), nil
	}

	stats, err := s.repo.Stats(ctx, since, targetType)
	if err != nil {
		return nil, fmt.Errorf("counting reaction stats: %w", err)
	}
	s.cacheReport(cacheKey, stats)
	return stats, nil
}

// TargetLikes counts the active reactions of every target from the ledger.
func (s *Service) TargetLikes(ctx context.Context) ([]*domain.TargetLikes, error) {
	likes, err := s.repo.TargetLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting target likes: %w", err)
	}
	return likes, nil
}

func (s *Service) apply(ctx context.Context, auditKey, userID string, target domain.ReactionTarget, apply func(*domain.Reaction) domain.ReactionAction) (*domain.Reaction, domain.ReactionAction, error) {
	key := domain.ReactionKey{UserID: userID, Target: target}
	r, action, err := s.repo.Upsert(ctx, key, apply)
	if err != nil {
		return nil, "", fmt.Errorf("storing reaction of %q on %q: %w", userID, target, err)
	}

	if delta := action.LikesDelta(); delta != 0 {
		counterKey := domain.LikesCountKey(target.Type, target.ID)
		if _, err := s.counter.Increment(ctx, counterKey, delta); err != nil {
			s.logger.Warn(ctx, "counter is stale after failed increment", "key", counterKey.String(), "delta", delta, "error", err)
		}
	}
	s.metric.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", string(action)),
		attribute.String("target_type", string(target.Type)),
	))
	s.logger.Debug(ctx, "reaction applied", "user_id", userID, "target", target.String(), "action", string(action))

	if action != domain.ReactionActionNotFound && s.auditLogger != nil {
		data := map[string]interface{}{
			"user_id":     userID,
			"target_id":   target.ID,
			"target_type": string(target.Type),
			"action":      string(action),
		}
		if r != nil {
			data["reaction_type"] = string(r.ReactionType)
		}
		go func() {
			ctx := context.WithoutCancel(ctx)
			if err := s.auditLogger.Log(ctx, auditKey, data); err != nil {
				s.logger.Error(ctx, "failed to record audit log", "error", err, "action", auditKey, "target", target.String())
			}
		}()
	}

	return r, action, nil
}

func (s *Service) since(timeframe domain.Timeframe, targetType domain.TargetType) (time.Time, error) {
	if targetType != "" && !targetType.IsValid() {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidTargetType, targetType)
	}
	return timeframe.Since(TimeNow())
}

func validateTarget(target domain.ReactionTarget) error {
	if !target.Type.IsValid() {
		return fmt.Errorf("%w %q", ErrInvalidTargetType, target.Type)
	}
	if target.ID == "" {
		return ErrEmptyTargetID
	}
	return nil
}

func validateKey(userID string, target domain.ReactionTarget) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	return validateTarget(target)
}

func (s *Service) cachedReport(key string) (interface{}, bool) {
	if s.reportCache == nil {
		return nil, false
	}
	return s.reportCache.Get(key)
}

func (s *Service) cacheReport(key string, report interface{}) {
	if s.reportCache != nil {
		s.reportCache.Set(key, report, cache.DefaultExpiration)
	}
}

func pageSize(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}
