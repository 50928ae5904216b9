package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goto/engagement/internal/server"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/pkg/opentelemetry"
)

type runtime struct {
	config   server.Config
	logger   log.Logger
	services *server.Services
	shutdown func() error
}

func (r *runtime) Close() error {
	if err := r.services.Close(); err != nil {
		return err
	}
	return r.shutdown()
}

func loadConfig(cmd *cobra.Command) (server.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return server.Config{}, fmt.Errorf("getting config flag value: %w", err)
	}
	config, err := server.LoadConfig(configFile)
	if err != nil {
		return server.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return config, nil
}

func initRuntime(ctx context.Context, cmd *cobra.Command) (*runtime, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := log.NewCtxLoggerWithFormat(config.LogLevel, config.LogFormat, config.LogContextKeys)

	shutdown := func() error { return nil }
	if config.Telemetry.Enabled {
		shutdown, err = opentelemetry.Init(ctx, config.Telemetry)
		if err != nil {
			return nil, fmt.Errorf("initializing telemetry: %w", err)
		}
	}

	services, err := server.InitServices(ctx, server.ServiceDeps{
		Config:    &config,
		Logger:    logger,
		Validator: validator.New(),
	})
	if err != nil {
		shutdown()
		return nil, fmt.Errorf("initializing services: %w", err)
	}

	return &runtime{
		config:   config,
		logger:   logger,
		services: services,
		shutdown: shutdown,
	}, nil
}

func printYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}
