package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/goto/engagement/core/reaction"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store/postgres"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/pkg/postgrestest"
)

type ReactionRepositorySuite struct {
	suite.Suite
	store      *postgres.Store
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	repository *postgres.ReactionRepository
}

func TestReactionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(ReactionRepositorySuite))
}

func (s *ReactionRepositorySuite) SetupSuite() {
	var err error
	logger := log.NewCtxLogger("debug", []string{"test"})
	s.store, s.pool, s.resource, err = postgrestest.NewTestStore(logger)
	if err != nil {
		s.T().Fatal(err)
	}

	s.repository = postgres.NewReactionRepository(s.store.DB())
}

func (s *ReactionRepositorySuite) SetupTest() {
	s.Require().NoError(postgrestest.Truncate(s.store))
}

func (s *ReactionRepositorySuite) TearDownSuite() {
	if err := s.store.Close(); err != nil {
		s.T().Fatal(err)
	}

	if err := postgrestest.PurgeTestDocker(s.pool, s.resource); err != nil {
		s.T().Fatal(err)
	}
}

func toggle(reactionType domain.ReactionType) func(*domain.Reaction) domain.ReactionAction {
	return func(r *domain.Reaction) domain.ReactionAction {
		return r.Toggle(reactionType)
	}
}

func withdraw(r *domain.Reaction) domain.ReactionAction {
	return r.Withdraw()
}

func (s *ReactionRepositorySuite) TestUpsert() {
	ctx := context.Background()
	post := domain.ReactionTarget{ID: "post-1", Type: domain.TargetTypePost}
	key := domain.ReactionKey{UserID: "user-1", Target: post}

	s.Run("should not store anything when nothing is active", func() {
		r, action, err := s.repository.Upsert(ctx, key, withdraw)

		s.NoError(err)
		s.Nil(r)
		s.Equal(domain.ReactionActionNotFound, action)
		_, err = s.repository.Get(ctx, key)
		s.ErrorIs(err, reaction.ErrReactionNotFound)
	})

	s.Run("should walk the toggle states on the same row", func() {
		added, action, err := s.repository.Upsert(ctx, key, toggle(domain.ReactionTypeLike))
		s.Require().NoError(err)
		s.Equal(domain.ReactionActionAdded, action)
		s.True(added.IsActive)

		changed, action, err := s.repository.Upsert(ctx, key, toggle(domain.ReactionTypeLove))
		s.Require().NoError(err)
		s.Equal(domain.ReactionActionChanged, action)
		s.Equal(added.ID, changed.ID)
		s.Equal(domain.ReactionTypeLove, changed.ReactionType)

		removed, action, err := s.repository.Upsert(ctx, key, toggle(domain.ReactionTypeLove))
		s.Require().NoError(err)
		s.Equal(domain.ReactionActionRemoved, action)
		s.False(removed.IsActive)

		readded, action, err := s.repository.Upsert(ctx, key, toggle(domain.ReactionTypeWow))
		s.Require().NoError(err)
		s.Equal(domain.ReactionActionAdded, action)
		s.Equal(added.ID, readded.ID)

		stored, err := s.repository.Get(ctx, key)
		s.Require().NoError(err)
		s.True(stored.IsActive)
		s.Equal(domain.ReactionTypeWow, stored.ReactionType)
	})

	s.Run("should serialize concurrent requests of distinct users", func() {
		target := domain.ReactionTarget{ID: "post-2", Type: domain.TargetTypePost}
		const users = 20

		var wg sync.WaitGroup
		for i := 0; i < users; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				k := domain.ReactionKey{UserID: fmt.Sprintf("user-%d", i), Target: target}
				_, _, err := s.repository.Upsert(ctx, k, toggle(domain.ReactionTypeLike))
				s.NoError(err)
			}(i)
		}
		wg.Wait()

		summary, err := s.repository.Summary(ctx, target)
		s.Require().NoError(err)
		s.Equal(int64(users), summary.Total)
	})
}

func (s *ReactionRepositorySuite) TestAggregates() {
	ctx := context.Background()
	post := domain.ReactionTarget{ID: "post-1", Type: domain.TargetTypePost}
	commentTarget := domain.ReactionTarget{ID: "comment-1", Type: domain.TargetTypeComment}
	poll := domain.ReactionTarget{ID: "poll-1", Type: domain.TargetTypePoll}

	react := func(userID string, target domain.ReactionTarget, reactionType domain.ReactionType) {
		_, _, err := s.repository.Upsert(ctx, domain.ReactionKey{UserID: userID, Target: target}, toggle(reactionType))
		s.Require().NoError(err)
	}
	react("user-1", post, domain.ReactionTypeLike)
	react("user-2", post, domain.ReactionTypeLike)
	react("user-3", post, domain.ReactionTypeLove)
	react("user-1", commentTarget, domain.ReactionTypeLike)
	react("user-4", commentTarget, domain.ReactionTypeSad)
	react("user-4", commentTarget, domain.ReactionTypeSad) // removed
	react("user-5", poll, domain.ReactionTypeLike)
	react("user-5", poll, domain.ReactionTypeLike) // removed

	s.Run("summary counts active reactions by type", func() {
		summary, err := s.repository.Summary(ctx, post)

		s.NoError(err)
		s.Equal(int64(3), summary.Total)
		s.Equal(map[domain.ReactionType]int64{domain.ReactionTypeLike: 2, domain.ReactionTypeLove: 1}, summary.Reactions)
	})

	s.Run("list returns active reactions of a user", func() {
		reactions, err := s.repository.List(ctx, domain.ListReactionsFilter{UserID: "user-1"})

		s.NoError(err)
		s.Len(reactions, 2)
		s.Equal("comment-1", reactions[0].TargetID)
	})

	s.Run("list skips inactive reactions", func() {
		reactions, err := s.repository.List(ctx, domain.ListReactionsFilter{UserID: "user-4"})

		s.NoError(err)
		s.Empty(reactions)
	})

	s.Run("popular ranks targets", func() {
		popular, err := s.repository.Popular(ctx, time.Now().Add(-time.Hour), "", 10)

		s.NoError(err)
		s.Equal([]*domain.PopularTarget{
			{TargetID: "post-1", TargetType: domain.TargetTypePost, LikesCount: 3, UniqueUsers: 3},
			{TargetID: "comment-1", TargetType: domain.TargetTypeComment, LikesCount: 1, UniqueUsers: 1},
		}, popular)
	})

	s.Run("popular filters by type and time", func() {
		popular, err := s.repository.Popular(ctx, time.Now().Add(time.Hour), domain.TargetTypePost, 10)

		s.NoError(err)
		s.Empty(popular)
	})

	s.Run("stats group by reaction and target type", func() {
		stats, err := s.repository.Stats(ctx, time.Time{}, "")

		s.NoError(err)
		s.Equal([]*domain.ReactionStat{
			{ReactionType: domain.ReactionTypeLike, TargetType: domain.TargetTypePost, Count: 2},
			{ReactionType: domain.ReactionTypeLike, TargetType: domain.TargetTypeComment, Count: 1},
			{ReactionType: domain.ReactionTypeLove, TargetType: domain.TargetTypePost, Count: 1},
		}, stats)
	})

	s.Run("target likes counts every target, withdrawn ones as zero", func() {
		likes, err := s.repository.TargetLikes(ctx)

		s.NoError(err)
		s.ElementsMatch([]*domain.TargetLikes{
			{Target: post, Count: 3},
			{Target: commentTarget, Count: 1},
			{Target: poll, Count: 0},
		}, likes)
	})
}
