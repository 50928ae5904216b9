package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/engagement/internal/store"
	"github.com/goto/engagement/internal/store/postgres"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Example: heredoc.Doc(`
			$ engagement migrate -c ./config.yaml
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if config.DB.Driver == store.StorageDriverMemory {
				return fmt.Errorf("nothing to migrate with the %q storage driver", store.StorageDriverMemory)
			}

			st, err := postgres.NewStore(&config.DB)
			if err != nil {
				return fmt.Errorf("initializing store: %w", err)
			}
			defer st.Close()

			if err := st.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration finished")
			return nil
		},
	}
}
