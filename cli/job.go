package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/spf13/cobra"

	"github.com/goto/engagement/jobs"
)

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Manage jobs",
		Example: heredoc.Doc(`
			$ engagement job run reconcile_counters
		`),
	}

	cmd.AddCommand(
		runJobCmd(),
	)

	return cmd
}

func runJobCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fire a specific job",
		Example: heredoc.Doc(`
			$ engagement job run reconcile_counters
			$ engagement job run reconcile_counters --dry-run
		`),
		Args: cobra.ExactValidArgs(1),
		ValidArgs: []string{
			string(jobs.TypeReconcileCounters),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := initRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			handler := jobs.NewHandler(
				rt.logger,
				rt.services.CommentService,
				rt.services.ReactionService,
				rt.services.CounterService,
				validator.New(),
			)

			jobsMap := map[jobs.Type]func(context.Context, jobs.Config) error{
				jobs.TypeReconcileCounters: handler.ReconcileCounters,
			}

			jobName := jobs.Type(args[0])
			job := jobsMap[jobName]
			if job == nil {
				return fmt.Errorf("invalid job name: %s", jobName)
			}
			jobConfig := jobs.Config{}
			if err := mergo.Merge(&jobConfig, rt.config.Jobs[jobName].Config); err != nil {
				return fmt.Errorf("reading job config: %w", err)
			}
			if cmd.Flags().Changed("dry-run") {
				jobConfig["dry_run"] = dryRun
			}
			if err := job(ctx, jobConfig); err != nil {
				return fmt.Errorf(`failed to run job "%s": %w`, jobName, err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report drift without writing counters")

	return cmd
}
