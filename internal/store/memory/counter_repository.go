package memory

import (
	"context"
	"sync"

	"github.com/goto/engagement/domain"
)

type CounterRepository struct {
	mu     sync.Mutex
	values map[domain.CounterKey]int64
}

func NewCounterRepository() *CounterRepository {
	return &CounterRepository{values: map[domain.CounterKey]int64{}}
}

func (r *CounterRepository) Increment(_ context.Context, key domain.CounterKey, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value := r.values[key] + delta
	if value < 0 {
		value = 0
	}
	r.values[key] = value
	return value, nil
}

func (r *CounterRepository) Get(_ context.Context, keys []domain.CounterKey) (domain.CounterValues, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := domain.CounterValues{}
	for _, k := range keys {
		if v, exists := r.values[k]; exists {
			values[k] = v
		}
	}
	return values, nil
}

func (r *CounterRepository) CompareAndSet(_ context.Context, key domain.CounterKey, current, value int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.values[key] != current {
		return false, nil
	}
	r.values[key] = value
	return true, nil
}

func (r *CounterRepository) Delete(_ context.Context, keys []domain.CounterKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}
