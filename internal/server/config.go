package server

import (
	"errors"
	"fmt"

	"github.com/goto/salt/config"

	"github.com/goto/engagement/core/comment"
	"github.com/goto/engagement/core/reaction"
	"github.com/goto/engagement/internal/store"
	"github.com/goto/engagement/jobs"
	"github.com/goto/engagement/pkg/opentelemetry"
	"github.com/goto/engagement/plugins/notifiers"
)

type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" default:"info"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" default:"text" validate:"oneof=text json"`
	// LogContextKeys are context values appended to every log entry.
	LogContextKeys []string             `mapstructure:"log_context_keys" yaml:"log_context_keys"`
	DB             store.Config         `mapstructure:"db" yaml:"db"`
	Counter        store.CounterConfig  `mapstructure:"counter" yaml:"counter"`
	Comment        comment.Config       `mapstructure:"comment" yaml:"comment"`
	Reaction       reaction.Config      `mapstructure:"reaction" yaml:"reaction"`
	Notifier       notifiers.Config     `mapstructure:"notifier" yaml:"notifier"`
	Telemetry      opentelemetry.Config `mapstructure:"telemetry" yaml:"telemetry"`
	// AuditLogDisabled stops recording comment and reaction changes in
	// audit_logs.
	AuditLogDisabled bool                   `mapstructure:"audit_log_disabled" yaml:"audit_log_disabled"`
	Jobs             map[jobs.Type]jobs.Job `mapstructure:"jobs" yaml:"jobs"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			fmt.Println(err)
			return cfg, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
