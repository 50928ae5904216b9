package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "engagement <command> <subcommand> [flags]",
		Short:         "Comments, reactions and engagement counters",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: heredoc.Doc(`
			Threaded comments, polymorphic reactions and denormalized
			engagement counters over postgres.`),
		Example: heredoc.Doc(`
			$ engagement migrate
			$ engagement job run reconcile_counters
			$ engagement comment thread <comment-id>
		`),
	}

	cmd.AddCommand(
		MigrateCmd(),
		JobCmd(),
		ConfigCmd(),
		CommentCmd(),
		ReactionCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}
