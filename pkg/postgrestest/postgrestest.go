package postgrestest

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/goto/engagement/internal/store"
	"github.com/goto/engagement/internal/store/postgres"
	"github.com/goto/engagement/pkg/log"
)

const (
	pgUser     = "test_user"
	pgPassword = "test_pass"
	pgDBName   = "test_db"
)

// NewTestStore starts a disposable postgres container and returns a migrated
// store connected to it. The container expires on its own after a few
// minutes if PurgeTestDocker is never called.
func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	ctx := context.Background()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "13",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start postgres container: %w", err)
	}

	cfg := &store.Config{
		Host:            "localhost",
		User:            pgUser,
		Password:        pgPassword,
		Name:            pgDBName,
		Port:            resource.GetPort("5432/tcp"),
		SslMode:         "disable",
		LogLevel:        "silent",
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}
	logger.Info(ctx, "starting test postgres", "port", cfg.Port)

	if err := resource.Expire(300); err != nil {
		return nil, nil, nil, fmt.Errorf("could not set container expiry: %w", err)
	}

	var st *postgres.Store
	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		s, err := postgres.NewStore(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := s.DB().DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		st = s
		return nil
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, nil, nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	if err := st.Migrate(); err != nil {
		_ = pool.Purge(resource)
		return nil, nil, nil, fmt.Errorf("could not migrate test database: %w", err)
	}

	return st, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("could not purge postgres container: %w", err)
	}
	return nil
}

// Truncate empties every table the engagement repositories write to.
func Truncate(st *postgres.Store) error {
	return st.DB().Exec("TRUNCATE TABLE reactions, entity_counters, comments").Error
}
