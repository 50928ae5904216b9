package store

import (
	"fmt"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	CounterDriverPostgres = "postgres"
	CounterDriverRedis    = "redis"
	CounterDriverMemory   = "memory"
)

type Config struct {
	// Driver selects where comments and reactions are kept. The memory
	// driver loses everything on exit.
	Driver          string        `mapstructure:"driver" yaml:"driver" default:"postgres" validate:"oneof=postgres memory"`
	Host            string        `mapstructure:"host" yaml:"host" default:"localhost"`
	User            string        `mapstructure:"user" yaml:"user" default:"postgres"`
	Password        string        `mapstructure:"password" yaml:"password"`
	Name            string        `mapstructure:"name" yaml:"name" default:"engagement"`
	Port            string        `mapstructure:"port" yaml:"port" default:"5432"`
	SslMode         string        `mapstructure:"sslmode" yaml:"sslmode" default:"disable"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level" default:"silent" validate:"omitempty,oneof=silent error warn info"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" yaml:"max_open_conns" default:"20"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" yaml:"max_idle_conns" default:"5"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime" default:"30m"`
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SslMode,
	)
}

// CounterConfig selects the backend of the counter store
type CounterConfig struct {
	Driver   string `mapstructure:"driver" yaml:"driver" default:"postgres" validate:"oneof=postgres redis memory"`
	RedisURL string `mapstructure:"redis_url" yaml:"redis_url" validate:"required_if=Driver redis"`
}
