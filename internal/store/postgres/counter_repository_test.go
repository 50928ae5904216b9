package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	pg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store/postgres"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/pkg/postgrestest"
)

func TestCounterRepository_Increment_Query(t *testing.T) {
	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(pg.New(pg.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	repo := postgres.NewCounterRepository(db)
	key := domain.RepliesCountKey("comment-1")

	t.Run("should apply the delta in a single upsert", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta(
			`INSERT INTO entity_counters (entity_kind, entity_id, field, value, updated_at)
VALUES ($1, $2, $3, GREATEST($4::bigint, 0), NOW())
ON CONFLICT (entity_kind, entity_id, field)
DO UPDATE SET value = GREATEST(entity_counters.value + $5::bigint, 0), updated_at = NOW()
RETURNING value`)).
			WithArgs("comment", "comment-1", "replies_count", int64(-1), int64(-1)).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(0))

		value, err := repo.Increment(context.Background(), key, -1)

		assert.NoError(t, err)
		assert.Zero(t, value)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("should return query error", func(t *testing.T) {
		expectedErr := errors.New("connection reset")
		dbMock.ExpectQuery("INSERT INTO entity_counters").WillReturnError(expectedErr)

		_, err := repo.Increment(context.Background(), key, 1)

		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestCounterRepository_CompareAndSet_Query(t *testing.T) {
	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(pg.New(pg.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	repo := postgres.NewCounterRepository(db)
	key := domain.RepliesCountKey("comment-1")
	query := `(?s)WITH updated AS \(.*UPDATE entity_counters SET value = CAST\(\$1 AS bigint\).*AND value = CAST\(\$5 AS bigint\).*INSERT INTO entity_counters.*WHERE CAST\(\$10 AS bigint\) = 0.*ON CONFLICT \(entity_kind, entity_id, field\) DO NOTHING`

	t.Run("should only write while the counter holds the value read", func(t *testing.T) {
		dbMock.ExpectQuery(query).
			WithArgs(int64(3), "comment", "comment-1", "replies_count", int64(2), "comment", "comment-1", "replies_count", int64(3), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		swapped, err := repo.CompareAndSet(context.Background(), key, 2, 3)

		assert.NoError(t, err)
		assert.False(t, swapped)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("should report a write", func(t *testing.T) {
		dbMock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		swapped, err := repo.CompareAndSet(context.Background(), key, 2, 3)

		assert.NoError(t, err)
		assert.True(t, swapped)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

type CounterRepositorySuite struct {
	suite.Suite
	store      *postgres.Store
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	repository *postgres.CounterRepository
}

func TestCounterRepository(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(CounterRepositorySuite))
}

func (s *CounterRepositorySuite) SetupSuite() {
	var err error
	logger := log.NewCtxLogger("debug", []string{"test"})
	s.store, s.pool, s.resource, err = postgrestest.NewTestStore(logger)
	if err != nil {
		s.T().Fatal(err)
	}

	s.repository = postgres.NewCounterRepository(s.store.DB())
}

func (s *CounterRepositorySuite) SetupTest() {
	s.Require().NoError(postgrestest.Truncate(s.store))
}

func (s *CounterRepositorySuite) TearDownSuite() {
	if err := s.store.Close(); err != nil {
		s.T().Fatal(err)
	}

	if err := postgrestest.PurgeTestDocker(s.pool, s.resource); err != nil {
		s.T().Fatal(err)
	}
}

func (s *CounterRepositorySuite) TestIncrement() {
	ctx := context.Background()
	key := domain.CommentsCountKey("post-1")

	value, err := s.repository.Increment(ctx, key, -1)
	s.NoError(err)
	s.Zero(value, "a missing counter is created clamped")

	value, err = s.repository.Increment(ctx, key, 3)
	s.NoError(err)
	s.Equal(int64(3), value)

	value, err = s.repository.Increment(ctx, key, -10)
	s.NoError(err)
	s.Zero(value)

	s.Run("should not lose concurrent increments", func() {
		likes := domain.LikesCountKey(domain.TargetTypePost, "post-1")
		var wg sync.WaitGroup
		for i := 0; i < 30; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.repository.Increment(ctx, likes, 1)
				s.NoError(err)
			}()
		}
		wg.Wait()

		values, err := s.repository.Get(ctx, []domain.CounterKey{likes})
		s.NoError(err)
		s.Equal(int64(30), values.Of(likes))
	})
}

func (s *CounterRepositorySuite) TestGetCompareAndSetDelete() {
	ctx := context.Background()
	replies := domain.RepliesCountKey("comment-1")
	comments := domain.CommentsCountKey("post-1")
	missing := domain.LikesCountKey(domain.TargetTypeComment, "comment-1")

	swapped, err := s.repository.CompareAndSet(ctx, replies, 0, 2)
	s.Require().NoError(err)
	s.True(swapped)
	swapped, err = s.repository.CompareAndSet(ctx, comments, 0, 5)
	s.Require().NoError(err)
	s.True(swapped)

	swapped, err = s.repository.CompareAndSet(ctx, replies, 0, 9)
	s.Require().NoError(err)
	s.False(swapped, "a missing counter is zero, this one holds 2")

	_, err = s.repository.Increment(ctx, replies, 1)
	s.Require().NoError(err)
	swapped, err = s.repository.CompareAndSet(ctx, replies, 2, 4)
	s.Require().NoError(err)
	s.False(swapped, "the increment moved the counter to 3")

	swapped, err = s.repository.CompareAndSet(ctx, replies, 3, 4)
	s.Require().NoError(err)
	s.True(swapped)

	values, err := s.repository.Get(ctx, []domain.CounterKey{replies, comments, missing})
	s.NoError(err)
	s.Equal(domain.CounterValues{replies: 4, comments: 5}, values)

	s.Require().NoError(s.repository.Delete(ctx, []domain.CounterKey{replies}))

	values, err = s.repository.Get(ctx, []domain.CounterKey{replies, comments})
	s.NoError(err)
	s.Equal(domain.CounterValues{comments: 5}, values)
}
