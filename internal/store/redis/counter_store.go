package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/slices"
)

const (
	keyPrefix = "counter:"
	batchSize = 500
)

// incrementScript applies the delta and clamps the result at zero within a
// single server side step.
var incrementScript = redis.NewScript(`
local value = redis.call('INCRBY', KEYS[1], ARGV[1])
if value < 0 then
	redis.call('SET', KEYS[1], 0)
	return 0
end
return value
`)

// compareAndSetScript writes ARGV[2] only while the key holds ARGV[1]. A
// missing key holds zero.
var compareAndSetScript = redis.NewScript(`
local stored = tonumber(redis.call('GET', KEYS[1]) or '0')
if stored ~= tonumber(ARGV[1]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2])
return 1
`)

// CounterStore keeps entity counters as plain integer keys named
// counter:<kind>:<id>:<field>.
type CounterStore struct {
	client *redis.Client
}

func NewCounterStore(redisURL string) (*CounterStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &CounterStore{client: client}, nil
}

func NewCounterStoreWithClient(client *redis.Client) *CounterStore {
	return &CounterStore{client: client}
}

func key(k domain.CounterKey) string {
	return keyPrefix + k.String()
}

func (s *CounterStore) Increment(ctx context.Context, k domain.CounterKey, delta int64) (int64, error) {
	value, err := incrementScript.Run(ctx, s.client, []string{key(k)}, delta).Int64()
	if err != nil {
		return 0, fmt.Errorf("increment counter: %w", err)
	}
	return value, nil
}

func (s *CounterStore) Get(ctx context.Context, keys []domain.CounterKey) (domain.CounterValues, error) {
	values := domain.CounterValues{}
	for _, chunk := range slices.GenericsChunkSlice(keys, batchSize) {
		redisKeys := make([]string, 0, len(chunk))
		for _, k := range chunk {
			redisKeys = append(redisKeys, key(k))
		}

		res, err := s.client.MGet(ctx, redisKeys...).Result()
		if err != nil {
			return nil, fmt.Errorf("get counters: %w", err)
		}
		for i, v := range res {
			raw, ok := v.(string)
			if !ok {
				continue
			}
			value, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse counter %q: %w", redisKeys[i], err)
			}
			values[chunk[i]] = value
		}
	}
	return values, nil
}

func (s *CounterStore) CompareAndSet(ctx context.Context, k domain.CounterKey, current, value int64) (bool, error) {
	swapped, err := compareAndSetScript.Run(ctx, s.client, []string{key(k)}, current, value).Int64()
	if err != nil {
		return false, fmt.Errorf("compare and set counter: %w", err)
	}
	return swapped == 1, nil
}

func (s *CounterStore) Delete(ctx context.Context, keys []domain.CounterKey) error {
	for _, chunk := range slices.GenericsChunkSlice(keys, batchSize) {
		redisKeys := make([]string, 0, len(chunk))
		for _, k := range chunk {
			redisKeys = append(redisKeys, key(k))
		}
		if err := s.client.Del(ctx, redisKeys...).Err(); err != nil {
			return fmt.Errorf("delete counters: %w", err)
		}
	}
	return nil
}

func (s *CounterStore) Close() error {
	return s.client.Close()
}

func (s *CounterStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
