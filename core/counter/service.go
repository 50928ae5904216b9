package counter

import (
	"context"
	"fmt"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	// Increment adds delta to the counter in a single storage-side operation
	// and returns the new value. The stored value never drops below zero.
	Increment(ctx context.Context, key domain.CounterKey, delta int64) (int64, error)
	Get(ctx context.Context, keys []domain.CounterKey) (domain.CounterValues, error)
	// CompareAndSet writes value only while the counter still holds current,
	// a missing counter holding zero, and reports whether it did.
	CompareAndSet(ctx context.Context, key domain.CounterKey, current, value int64) (bool, error)
	Delete(ctx context.Context, keys []domain.CounterKey) error
}

type Service struct {
	repo   repository
	logger log.Logger
}

type ServiceDeps struct {
	Repository repository
	Logger     log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:   deps.Repository,
		logger: deps.Logger,
	}
}

// Increment atomically applies delta to a counter. A decrement below zero
// is clamped and still succeeds.
func (s *Service) Increment(ctx context.Context, key domain.CounterKey, delta int64) (int64, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}

	value, err := s.repo.Increment(ctx, key, delta)
	if err != nil {
		return 0, fmt.Errorf("incrementing counter %q: %w", key, err)
	}

	s.logger.Debug(ctx, "counter incremented", "key", key.String(), "delta", delta, "value", value)
	return value, nil
}

// Get reads counters in one round trip. Counters never written read as zero.
func (s *Service) Get(ctx context.Context, keys []domain.CounterKey) (domain.CounterValues, error) {
	if len(keys) == 0 {
		return domain.CounterValues{}, nil
	}
	for _, k := range keys {
		if err := k.Validate(); err != nil {
			return nil, err
		}
	}

	values, err := s.repo.Get(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("getting counters: %w", err)
	}
	return values, nil
}

// CompareAndSet replaces a counter with a recomputed value unless it moved
// away from current since it was read. Increments landing meanwhile are
// never overwritten.
func (s *Service) CompareAndSet(ctx context.Context, key domain.CounterKey, current, value int64) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}
	if value < 0 {
		return false, fmt.Errorf("%w: %q=%d", ErrNegativeValue, key, value)
	}

	swapped, err := s.repo.CompareAndSet(ctx, key, current, value)
	if err != nil {
		return false, fmt.Errorf("setting counter %q: %w", key, err)
	}
	return swapped, nil
}

// Delete drops counters of entities that no longer exist.
func (s *Service) Delete(ctx context.Context, keys []domain.CounterKey) error {
	if len(keys) == 0 {
		return ErrEmptyKeys
	}
	for _, k := range keys {
		if err := k.Validate(); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, keys); err != nil {
		return fmt.Errorf("deleting counters: %w", err)
	}
	return nil
}
