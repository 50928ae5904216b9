package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/mcuadros/go-defaults"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goto/engagement/internal/server"
)

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage client configuration",
		Example: heredoc.Doc(`
			$ engagement config init
			$ engagement config view
		`),
	}

	cmd.AddCommand(
		configInitCmd(),
		configViewCmd(),
	)

	return cmd
}

func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file filled with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("getting config flag value: %w", err)
			}
			if _, err := os.Stat(configFile); err == nil {
				return fmt.Errorf("%s already exists", configFile)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}

			var config server.Config
			defaults.SetDefaults(&config)
			data, err := yaml.Marshal(config)
			if err != nil {
				return err
			}
			if err := os.WriteFile(configFile, data, 0o600); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "config created: %s\n", configFile)
			return nil
		},
	}
}

func configViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			config.DB.Password = redacted(config.DB.Password)
			config.Counter.RedisURL = redacted(config.Counter.RedisURL)
			return printYAML(config)
		},
	}
}

func redacted(s string) string {
	if s == "" {
		return s
	}
	return "*****"
}
