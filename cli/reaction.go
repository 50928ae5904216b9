package cli

import (
	"context"
	"errors"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/engagement/domain"
)

func ReactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reaction",
		Aliases: []string{"reactions"},
		Short:   "Inspect reactions",
		Example: heredoc.Doc(`
			$ engagement reaction summary post p-1
			$ engagement reaction popular --timeframe 24hours --type comment
		`),
	}

	cmd.AddCommand(
		reactionSummaryCmd(),
		reactionPopularCmd(),
		reactionHistoryCmd(),
	)

	return cmd
}

func reactionSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <target-type> <target-id>",
		Short: "Print the reaction counts of a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := initRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			summary, err := rt.services.ReactionService.Summary(ctx, domain.ReactionTarget{
				Type: domain.TargetType(args[0]),
				ID:   args[1],
			})
			if err != nil {
				return err
			}
			return printYAML(summary)
		},
	}
}

func reactionPopularCmd() *cobra.Command {
	var (
		timeframe  string
		targetType string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Rank targets by active reactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := initRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			popular, err := rt.services.ReactionService.Popular(ctx, domain.Timeframe(timeframe), domain.TargetType(targetType), limit)
			if err != nil {
				return err
			}
			return printYAML(popular)
		},
	}

	cmd.Flags().StringVar(&timeframe, "timeframe", string(domain.Timeframe7Days), "One of 24hours, 7days, 30days or all")
	cmd.Flags().StringVarP(&targetType, "type", "t", "", "Only rank targets of this type")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of targets")

	return cmd
}

func reactionHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <target-type> <target-id>",
		Short: "Print the recorded reaction changes of a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := initRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.services.EventService == nil {
				return errors.New("reaction history requires the postgres storage driver")
			}
			events, err := rt.services.EventService.TargetHistory(ctx, domain.ReactionTarget{
				Type: domain.TargetType(args[0]),
				ID:   args[1],
			})
			if err != nil {
				return err
			}
			return printYAML(events)
		},
	}
}
