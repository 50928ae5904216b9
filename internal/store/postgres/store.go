package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/goto/engagement/internal/store"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationFs embed.FS

type Store struct {
	db *gorm.DB
}

func NewStore(c *store.Config) (*Store, error) {
	gormDB, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel(c.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := gormDB.Use(otelgorm.NewPlugin(otelgorm.WithDBName(c.Name))); err != nil {
		return nil, fmt.Errorf("registering tracing plugin: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)

	return &Store{db: gormDB}, nil
}

// NewStoreWithDB wraps an already opened connection
func NewStoreWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate applies every pending embedded migration
func (s *Store) Migrate() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	src, err := iofs.New(migrationFs, "migrations")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("initializing migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("initializing migration: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func logLevel(level string) gormLogger.LogLevel {
	switch level {
	case "error":
		return gormLogger.Error
	case "warn":
		return gormLogger.Warn
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Silent
	}
}
