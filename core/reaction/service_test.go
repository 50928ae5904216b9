package reaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goto/engagement/core/reaction"
	"github.com/goto/engagement/core/reaction/mocks"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockCounter     *mocks.CounterService
	mockAuditLogger *mocks.AuditLogger
	service         *reaction.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.setup(reaction.Config{})
}

func (s *ServiceTestSuite) setup(cfg reaction.Config) {
	s.mockRepo = new(mocks.Repository)
	s.mockCounter = new(mocks.CounterService)
	s.mockAuditLogger = new(mocks.AuditLogger)
	s.mockAuditLogger.EXPECT().Log(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	s.service = reaction.NewService(reaction.ServiceDeps{
		Repository:  s.mockRepo,
		Counter:     s.mockCounter,
		AuditLogger: s.mockAuditLogger,
		Logger:      log.NewNoop(),
		Config:      cfg,
	})
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// upsertOn makes the repository apply the request on existing, or on a new
// inactive reaction when existing is nil.
func upsertOn(existing *domain.Reaction) func(context.Context, domain.ReactionKey, func(*domain.Reaction) domain.ReactionAction) (*domain.Reaction, domain.ReactionAction, error) {
	return func(_ context.Context, key domain.ReactionKey, apply func(*domain.Reaction) domain.ReactionAction) (*domain.Reaction, domain.ReactionAction, error) {
		r := existing
		if r == nil {
			r = &domain.Reaction{UserID: key.UserID, TargetID: key.Target.ID, TargetType: key.Target.Type}
		}
		action := apply(r)
		if existing == nil && !r.IsActive {
			return nil, action, nil
		}
		return r, action, nil
	}
}

func (s *ServiceTestSuite) TestReact() {
	target := domain.ReactionTarget{ID: "post-1", Type: domain.TargetTypePost}
	key := domain.ReactionKey{UserID: "user-1", Target: target}
	likesKey := domain.LikesCountKey(domain.TargetTypePost, "post-1")

	testCases := []struct {
		name           string
		existing       *domain.Reaction
		requested      domain.ReactionType
		expectedAction domain.ReactionAction
		expectedDelta  int64
		expectedActive bool
		expectedType   domain.ReactionType
	}{
		{
			name:           "no previous reaction",
			requested:      domain.ReactionTypeLike,
			expectedAction: domain.ReactionActionAdded,
			expectedDelta:  1,
			expectedActive: true,
			expectedType:   domain.ReactionTypeLike,
		},
		{
			name:           "same active reaction",
			existing:       &domain.Reaction{ID: "r-1", UserID: "user-1", TargetID: "post-1", TargetType: domain.TargetTypePost, ReactionType: domain.ReactionTypeLike, IsActive: true},
			requested:      domain.ReactionTypeLike,
			expectedAction: domain.ReactionActionRemoved,
			expectedDelta:  -1,
			expectedActive: false,
			expectedType:   domain.ReactionTypeLike,
		},
		{
			name:           "different active reaction",
			existing:       &domain.Reaction{ID: "r-1", UserID: "user-1", TargetID: "post-1", TargetType: domain.TargetTypePost, ReactionType: domain.ReactionTypeLike, IsActive: true},
			requested:      domain.ReactionTypeLove,
			expectedAction: domain.ReactionActionChanged,
			expectedActive: true,
			expectedType:   domain.ReactionTypeLove,
		},
		{
			name:           "inactive reaction",
			existing:       &domain.Reaction{ID: "r-1", UserID: "user-1", TargetID: "post-1", TargetType: domain.TargetTypePost, ReactionType: domain.ReactionTypeLike},
			requested:      domain.ReactionTypeWow,
			expectedAction: domain.ReactionActionAdded,
			expectedDelta:  1,
			expectedActive: true,
			expectedType:   domain.ReactionTypeWow,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.mockRepo.EXPECT().
				Upsert(mock.MatchedBy(func(ctx context.Context) bool { return true }), key, mock.Anything).
				RunAndReturn(upsertOn(tc.existing)).Once()
			if tc.expectedDelta != 0 {
				s.mockCounter.EXPECT().Increment(mock.Anything, likesKey, tc.expectedDelta).Return(int64(0), nil).Once()
			}

			r, action, err := s.service.React(context.Background(), "user-1", target, tc.requested)

			s.Require().NoError(err)
			s.Equal(tc.expectedAction, action)
			s.Equal(tc.expectedActive, r.IsActive)
			s.Equal(tc.expectedType, r.ReactionType)
			s.mockCounter.AssertExpectations(s.T())
			if tc.expectedDelta == 0 {
				s.mockCounter.AssertNotCalled(s.T(), "Increment", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}

	s.Run("should validate input", func() {
		validationCases := []struct {
			name         string
			userID       string
			target       domain.ReactionTarget
			reactionType domain.ReactionType
			expectedErr  error
		}{
			{"empty user", "", target, domain.ReactionTypeLike, reaction.ErrEmptyUserID},
			{"invalid target type", "user-1", domain.ReactionTarget{ID: "x", Type: "photo"}, domain.ReactionTypeLike, reaction.ErrInvalidTargetType},
			{"empty target", "user-1", domain.ReactionTarget{Type: domain.TargetTypePost}, domain.ReactionTypeLike, reaction.ErrEmptyTargetID},
			{"invalid reaction type", "user-1", target, "dislike", reaction.ErrInvalidReactionType},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				s.SetupTest()

				_, _, err := s.service.React(context.Background(), tc.userID, tc.target, tc.reactionType)

				s.ErrorIs(err, tc.expectedErr)
				s.ErrorIs(err, domain.ErrValidation)
				s.mockRepo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	s.Run("should not touch the counter when the ledger write fails", func() {
		s.SetupTest()
		expectedErr := errors.New("deadlock detected")
		s.mockRepo.EXPECT().Upsert(mock.Anything, key, mock.Anything).Return(nil, "", expectedErr).Once()

		_, _, err := s.service.React(context.Background(), "user-1", target, domain.ReactionTypeLike)

		s.ErrorIs(err, expectedErr)
		s.mockCounter.AssertNotCalled(s.T(), "Increment", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should keep the ledger result when the counter increment fails", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().Upsert(mock.Anything, key, mock.Anything).RunAndReturn(upsertOn(nil)).Once()
		s.mockCounter.EXPECT().Increment(mock.Anything, likesKey, int64(1)).Return(int64(0), errors.New("timeout")).Once()

		_, action, err := s.service.React(context.Background(), "user-1", target, domain.ReactionTypeLike)

		s.NoError(err)
		s.Equal(domain.ReactionActionAdded, action)
	})
}

func (s *ServiceTestSuite) TestUnreact() {
	target := domain.ReactionTarget{ID: "comment-1", Type: domain.TargetTypeComment}

	s.Run("should remove an active reaction of any type", func() {
		s.SetupTest()
		existing := &domain.Reaction{UserID: "user-1", TargetID: "comment-1", TargetType: domain.TargetTypeComment, ReactionType: domain.ReactionTypeSad, IsActive: true}
		s.mockRepo.EXPECT().Upsert(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(upsertOn(existing)).Once()
		s.mockCounter.EXPECT().
			Increment(mock.Anything, domain.LikesCountKey(domain.TargetTypeComment, "comment-1"), int64(-1)).
			Return(int64(0), nil).Once()

		r, action, err := s.service.Unreact(context.Background(), "user-1", target)

		s.Require().NoError(err)
		s.Equal(domain.ReactionActionRemoved, action)
		s.False(r.IsActive)
	})

	s.Run("should report not_found without touching the counter", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().Upsert(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(upsertOn(nil)).Once()

		r, action, err := s.service.Unreact(context.Background(), "user-1", target)

		s.Require().NoError(err)
		s.Equal(domain.ReactionActionNotFound, action)
		s.Nil(r)
		s.mockCounter.AssertNotCalled(s.T(), "Increment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestSummary() {
	target := domain.ReactionTarget{ID: "post-1", Type: domain.TargetTypePost}
	summary := &domain.ReactionSummary{
		Total:     3,
		Reactions: map[domain.ReactionType]int64{domain.ReactionTypeLike: 2, domain.ReactionTypeLove: 1},
	}

	s.Run("should read from the repository on every call", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().Summary(mock.Anything, target).Return(summary, nil).Twice()

		for i := 0; i < 2; i++ {
			actual, err := s.service.Summary(context.Background(), target)
			s.Require().NoError(err)
			s.Equal(summary, actual)
		}
		s.mockRepo.AssertExpectations(s.T())
	})

	s.Run("should not cache summaries when the report cache is enabled", func() {
		s.setup(reaction.Config{ReportCacheTTL: time.Minute, ReportCacheCleanup: time.Minute})
		updated := &domain.ReactionSummary{
			Total:     4,
			Reactions: map[domain.ReactionType]int64{domain.ReactionTypeLike: 3, domain.ReactionTypeLove: 1},
		}
		s.mockRepo.EXPECT().Summary(mock.Anything, target).Return(summary, nil).Once()
		s.mockRepo.EXPECT().Summary(mock.Anything, target).Return(updated, nil).Once()

		first, err := s.service.Summary(context.Background(), target)
		s.Require().NoError(err)
		second, err := s.service.Summary(context.Background(), target)
		s.Require().NoError(err)

		s.Equal(int64(3), first.Total)
		s.Equal(int64(4), second.Total)
		s.mockRepo.AssertExpectations(s.T())
	})
}

func (s *ServiceTestSuite) TestUserReaction() {
	target := domain.ReactionTarget{ID: "post-1", Type: domain.TargetTypePost}
	key := domain.ReactionKey{UserID: "user-1", Target: target}

	s.Run("should return the active type", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().Get(mock.Anything, key).Return(&domain.Reaction{ReactionType: domain.ReactionTypeCare, IsActive: true}, nil).Once()

		actual, err := s.service.UserReaction(context.Background(), "user-1", target)

		s.Require().NoError(err)
		s.Require().NotNil(actual)
		s.Equal(domain.ReactionTypeCare, *actual)
	})

	s.Run("should return nil for inactive or missing reactions", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().Get(mock.Anything, key).Return(&domain.Reaction{ReactionType: domain.ReactionTypeCare}, nil).Once()
		s.mockRepo.EXPECT().Get(mock.Anything, key).Return(nil, reaction.ErrReactionNotFound).Once()

		for i := 0; i < 2; i++ {
			actual, err := s.service.UserReaction(context.Background(), "user-1", target)
			s.NoError(err)
			s.Nil(actual)
		}
	})
}

func (s *ServiceTestSuite) TestListing() {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	reaction.TimeNow = func() time.Time { return now }
	defer func() { reaction.TimeNow = time.Now }()

	s.Run("ListByUser should filter by reaction type", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().
			List(mock.Anything, domain.ListReactionsFilter{UserID: "user-1", ReactionType: domain.ReactionTypeLove, Size: 20}).
			Return([]*domain.Reaction{}, nil).Once()

		_, err := s.service.ListByUser(context.Background(), "user-1", domain.ReactionTypeLove, 0, 0)

		s.NoError(err)
	})

	s.Run("ListReactors should list a target", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().
			List(mock.Anything, domain.ListReactionsFilter{TargetID: "p-1", TargetType: domain.TargetTypePoll, Size: 5, Offset: 5}).
			Return([]*domain.Reaction{}, nil).Once()

		_, err := s.service.ListReactors(context.Background(), domain.ReactionTarget{ID: "p-1", Type: domain.TargetTypePoll}, 5, 5)

		s.NoError(err)
	})

	s.Run("Popular should resolve the timeframe", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().
			Popular(mock.Anything, now.Add(-24*time.Hour), domain.TargetTypeComment, 10).
			Return([]*domain.PopularTarget{{TargetID: "c-1", TargetType: domain.TargetTypeComment, LikesCount: 3, UniqueUsers: 3}}, nil).Once()

		popular, err := s.service.Popular(context.Background(), domain.Timeframe24Hours, domain.TargetTypeComment, 0)

		s.Require().NoError(err)
		s.Len(popular, 1)
	})

	s.Run("Popular should serve repeated rankings from the report cache", func() {
		s.setup(reaction.Config{ReportCacheTTL: time.Minute, ReportCacheCleanup: time.Minute})
		s.mockRepo.EXPECT().
			Popular(mock.Anything, now.AddDate(0, 0, -7), domain.TargetType(""), 3).
			Return([]*domain.PopularTarget{{TargetID: "p-1", TargetType: domain.TargetTypePost, LikesCount: 9, UniqueUsers: 9}}, nil).Once()
		s.mockRepo.EXPECT().
			Popular(mock.Anything, now.AddDate(0, 0, -7), domain.TargetType(""), 5).
			Return([]*domain.PopularTarget{}, nil).Once()

		for i := 0; i < 2; i++ {
			popular, err := s.service.Popular(context.Background(), domain.Timeframe7Days, "", 3)
			s.Require().NoError(err)
			s.Len(popular, 1)
		}
		other, err := s.service.Popular(context.Background(), domain.Timeframe7Days, "", 5)
		s.Require().NoError(err)
		s.Empty(other)
		s.mockRepo.AssertExpectations(s.T())
	})

	s.Run("Stats should not cache failures", func() {
		s.setup(reaction.Config{ReportCacheTTL: time.Minute, ReportCacheCleanup: time.Minute})
		s.mockRepo.EXPECT().Stats(mock.Anything, time.Time{}, domain.TargetType("")).Return(nil, errors.New("timeout")).Once()
		s.mockRepo.EXPECT().Stats(mock.Anything, time.Time{}, domain.TargetType("")).Return([]*domain.ReactionStat{}, nil).Once()

		_, err := s.service.Stats(context.Background(), domain.TimeframeAll, "")
		s.Error(err)
		_, err = s.service.Stats(context.Background(), domain.TimeframeAll, "")
		s.NoError(err)
		s.mockRepo.AssertExpectations(s.T())
	})

	s.Run("Stats should reject invalid timeframes and target types", func() {
		s.SetupTest()

		_, err := s.service.Stats(context.Background(), "forever", "")
		s.ErrorIs(err, domain.ErrValidation)

		_, err = s.service.Stats(context.Background(), domain.TimeframeAll, "photo")
		s.ErrorIs(err, reaction.ErrInvalidTargetType)
	})

	s.Run("Stats should not bound the all timeframe", func() {
		s.SetupTest()
		s.mockRepo.EXPECT().Stats(mock.Anything, time.Time{}, domain.TargetType("")).Return(nil, nil).Once()

		_, err := s.service.Stats(context.Background(), domain.TimeframeAll, "")

		s.NoError(err)
	})
}
