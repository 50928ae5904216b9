package redis_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store/redis"
)

type CounterStoreTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	store  *redis.CounterStore
}

func TestCounterStore(t *testing.T) {
	suite.Run(t, new(CounterStoreTestSuite))
}

func (s *CounterStoreTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	store, err := redis.NewCounterStore("redis://" + s.server.Addr())
	s.Require().NoError(err)
	s.store = store
}

func (s *CounterStoreTestSuite) TearDownTest() {
	s.store.Close()
}

func (s *CounterStoreTestSuite) TestNewCounterStore() {
	s.Run("should return error on invalid url", func() {
		_, err := redis.NewCounterStore("not a url")
		s.Error(err)
	})

	s.Run("should reach the server", func() {
		s.NoError(s.store.Ping(context.Background()))
	})
}

func (s *CounterStoreTestSuite) TestIncrement() {
	ctx := context.Background()
	key := domain.RepliesCountKey("comment-1")

	s.Run("should create the counter on first increment", func() {
		value, err := s.store.Increment(ctx, key, 2)

		s.NoError(err)
		s.Equal(int64(2), value)
		raw, err := s.server.Get("counter:comment:comment-1:replies_count")
		s.NoError(err)
		s.Equal("2", raw)
	})

	s.Run("should clamp at zero", func() {
		value, err := s.store.Increment(ctx, key, -5)

		s.NoError(err)
		s.Zero(value)

		value, err = s.store.Increment(ctx, key, 1)
		s.NoError(err)
		s.Equal(int64(1), value)
	})

	s.Run("should clamp a missing counter decremented first", func() {
		value, err := s.store.Increment(ctx, domain.CommentsCountKey("post-9"), -1)

		s.NoError(err)
		s.Zero(value)
	})

	s.Run("should not lose concurrent increments", func() {
		likes := domain.LikesCountKey(domain.TargetTypePost, "post-1")
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.store.Increment(ctx, likes, 1)
				s.NoError(err)
			}()
		}
		wg.Wait()

		values, err := s.store.Get(ctx, []domain.CounterKey{likes})
		s.NoError(err)
		s.Equal(int64(50), values.Of(likes))
	})
}

func (s *CounterStoreTestSuite) TestGetCompareAndSetDelete() {
	ctx := context.Background()
	replies := domain.RepliesCountKey("comment-1")
	comments := domain.CommentsCountKey("post-1")
	missing := domain.LikesCountKey(domain.TargetTypeComment, "comment-1")

	for k, v := range (domain.CounterValues{replies: 3, comments: 7}) {
		swapped, err := s.store.CompareAndSet(ctx, k, 0, v)
		s.Require().NoError(err)
		s.True(swapped)
	}
	swapped, err := s.store.CompareAndSet(ctx, comments, 6, 1)
	s.Require().NoError(err)
	s.False(swapped)

	values, err := s.store.Get(ctx, []domain.CounterKey{replies, comments, missing})
	s.NoError(err)
	s.Equal(domain.CounterValues{replies: 3, comments: 7}, values)
	s.server.CheckGet(s.T(), "counter:post:post-1:comments_count", "7")

	s.NoError(s.store.Delete(ctx, []domain.CounterKey{replies, missing}))

	values, err = s.store.Get(ctx, []domain.CounterKey{replies, comments})
	s.NoError(err)
	s.Equal(domain.CounterValues{comments: 7}, values)
	s.False(s.server.Exists("counter:comment:comment-1:replies_count"))
}

func (s *CounterStoreTestSuite) TestGetInvalidValue() {
	s.Require().NoError(s.server.Set("counter:post:post-1:comments_count", "abc"))

	_, err := s.store.Get(context.Background(), []domain.CounterKey{domain.CommentsCountKey("post-1")})

	s.Error(err)
}
