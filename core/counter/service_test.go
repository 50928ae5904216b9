package counter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/engagement/core/counter"
	"github.com/goto/engagement/core/counter/mocks"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	service  *counter.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.service = counter.NewService(counter.ServiceDeps{
		Repository: s.mockRepo,
		Logger:     log.NewNoop(),
	})
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestIncrement() {
	key := domain.RepliesCountKey("comment-1")

	s.Run("should return the new value from the repository", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().
			Increment(mock.MatchedBy(func(ctx context.Context) bool { return true }), key, int64(-1)).
			Return(int64(0), nil).Once()

		value, err := s.service.Increment(context.Background(), key, -1)

		s.NoError(err)
		s.Equal(int64(0), value)
		s.mockRepo.AssertExpectations(s.T())
	})

	s.Run("should reject incomplete keys without touching storage", func() {
		s.SetupTest()

		_, err := s.service.Increment(context.Background(), domain.CounterKey{Kind: domain.EntityKindComment}, 1)

		s.ErrorIs(err, domain.ErrValidation)
		s.mockRepo.AssertNotCalled(s.T(), "Increment", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should wrap repository errors", func() {
		s.SetupTest()
		expectedErr := errors.New("connection refused")
		s.mockRepo.EXPECT().
			Increment(mock.Anything, key, int64(1)).
			Return(int64(0), expectedErr).Once()

		_, err := s.service.Increment(context.Background(), key, 1)

		s.ErrorIs(err, expectedErr)
		s.ErrorContains(err, key.String())
	})
}

func (s *ServiceTestSuite) TestGet() {
	s.Run("should skip storage on empty input", func() {
		s.SetupTest()

		values, err := s.service.Get(context.Background(), nil)

		s.NoError(err)
		s.Empty(values)
		s.mockRepo.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
	})

	s.Run("should read every key in one call", func() {
		s.SetupTest()
		keys := []domain.CounterKey{
			domain.RepliesCountKey("comment-1"),
			domain.LikesCountKey(domain.TargetTypeComment, "comment-1"),
		}
		expected := domain.CounterValues{keys[0]: 2}
		s.mockRepo.EXPECT().
			Get(mock.Anything, keys).
			Return(expected, nil).Once()

		values, err := s.service.Get(context.Background(), keys)

		s.NoError(err)
		s.Equal(int64(2), values.Of(keys[0]))
		s.Equal(int64(0), values.Of(keys[1]))
	})
}

func (s *ServiceTestSuite) TestCompareAndSet() {
	key := domain.CommentsCountKey("post-1")

	s.Run("should reject negative values", func() {
		s.SetupTest()

		swapped, err := s.service.CompareAndSet(context.Background(), key, 1, -3)

		s.ErrorIs(err, counter.ErrNegativeValue)
		s.False(swapped)
		s.mockRepo.AssertNotCalled(s.T(), "CompareAndSet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should report whether the value was written", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().CompareAndSet(mock.Anything, key, int64(2), int64(3)).Return(true, nil).Once()
		s.mockRepo.EXPECT().CompareAndSet(mock.Anything, key, int64(5), int64(3)).Return(false, nil).Once()

		swapped, err := s.service.CompareAndSet(context.Background(), key, 2, 3)
		s.NoError(err)
		s.True(swapped)

		swapped, err = s.service.CompareAndSet(context.Background(), key, 5, 3)
		s.NoError(err)
		s.False(swapped)
	})
}

func (s *ServiceTestSuite) TestDelete() {
	s.Run("should require keys", func() {
		s.SetupTest()

		s.ErrorIs(s.service.Delete(context.Background(), nil), counter.ErrEmptyKeys)
	})

	s.Run("should delete keys", func() {
		s.SetupTest()
		keys := []domain.CounterKey{domain.RepliesCountKey("c-1"), domain.LikesCountKey(domain.TargetTypeComment, "c-1")}
		s.mockRepo.EXPECT().Delete(mock.Anything, keys).Return(nil).Once()

		s.NoError(s.service.Delete(context.Background(), keys))
	})
}
