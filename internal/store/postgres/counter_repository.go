package postgres

import (
	"context"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store/postgres/model"
	"github.com/goto/engagement/pkg/slices"
	"gorm.io/gorm"
)

const counterBatchSize = 500

// incrementCounterQuery applies the delta server side. The stored value is
// clamped at zero on both the insert and the update path.
const incrementCounterQuery = `INSERT INTO entity_counters (entity_kind, entity_id, field, value, updated_at)
VALUES (?, ?, ?, GREATEST(?::bigint, 0), NOW())
ON CONFLICT (entity_kind, entity_id, field)
DO UPDATE SET value = GREATEST(entity_counters.value + ?::bigint, 0), updated_at = NOW()
RETURNING value`

// compareAndSetCounterQuery writes @value only while the counter holds
// @current. A missing counter holds zero and is created.
const compareAndSetCounterQuery = `WITH updated AS (
	UPDATE entity_counters SET value = CAST(@value AS bigint), updated_at = NOW()
	WHERE entity_kind = CAST(@kind AS text) AND entity_id = CAST(@id AS text) AND field = CAST(@field AS text) AND value = CAST(@current AS bigint)
	RETURNING 1
), inserted AS (
	INSERT INTO entity_counters (entity_kind, entity_id, field, value, updated_at)
	SELECT CAST(@kind AS text), CAST(@id AS text), CAST(@field AS text), CAST(@value AS bigint), NOW()
	WHERE CAST(@current AS bigint) = 0 AND NOT EXISTS (SELECT 1 FROM updated)
	ON CONFLICT (entity_kind, entity_id, field) DO NOTHING
	RETURNING 1
)
SELECT (SELECT COUNT(*) FROM updated) + (SELECT COUNT(*) FROM inserted)`

type CounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db}
}

func (r *CounterRepository) Increment(ctx context.Context, key domain.CounterKey, delta int64) (int64, error) {
	var value int64
	row := r.db.WithContext(ctx).
		Raw(incrementCounterQuery, string(key.Kind), key.ID, string(key.Field), delta, delta).
		Row()
	if err := row.Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

func (r *CounterRepository) Get(ctx context.Context, keys []domain.CounterKey) (domain.CounterValues, error) {
	values := domain.CounterValues{}
	for _, chunk := range slices.GenericsChunkSlice(keys, counterBatchSize) {
		var models []*model.EntityCounter
		if err := r.db.WithContext(ctx).
			Where("(entity_kind, entity_id, field) IN ?", counterTuples(chunk)).
			Find(&models).Error; err != nil {
			return nil, err
		}
		for _, m := range models {
			values[m.Key()] = m.Value
		}
	}
	return values, nil
}

func (r *CounterRepository) CompareAndSet(ctx context.Context, key domain.CounterKey, current, value int64) (bool, error) {
	var swapped int64
	row := r.db.WithContext(ctx).
		Raw(compareAndSetCounterQuery, map[string]interface{}{
			"kind":    string(key.Kind),
			"id":      key.ID,
			"field":   string(key.Field),
			"current": current,
			"value":   value,
		}).
		Row()
	if err := row.Scan(&swapped); err != nil {
		return false, err
	}
	return swapped == 1, nil
}

func (r *CounterRepository) Delete(ctx context.Context, keys []domain.CounterKey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, chunk := range slices.GenericsChunkSlice(keys, counterBatchSize) {
			if err := tx.
				Where("(entity_kind, entity_id, field) IN ?", counterTuples(chunk)).
				Delete(&model.EntityCounter{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func counterTuples(keys []domain.CounterKey) [][]interface{} {
	tuples := make([][]interface{}, 0, len(keys))
	for _, k := range keys {
		tuples = append(tuples, []interface{}{string(k.Kind), k.ID, string(k.Field)})
	}
	return tuples
}
