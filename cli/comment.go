package cli

import (
	"context"
	"errors"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comment",
		Aliases: []string{"comments"},
		Short:   "Inspect comment threads",
		Example: heredoc.Doc(`
			$ engagement comment thread 0190b2d4-6c1e-7c3a-9d7e-0d2b5e0b1f11
			$ engagement comment history 0190b2d4-6c1e-7c3a-9d7e-0d2b5e0b1f11
		`),
	}

	cmd.AddCommand(
		commentThreadCmd(),
		commentHistoryCmd(),
		commentActivityCmd(),
	)

	return cmd
}

func commentThreadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thread <comment-id>",
		Short: "Print a comment and its approved replies in thread order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := initRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			thread, err := rt.services.CommentService.GetThread(ctx, args[0])
			if err != nil {
				return err
			}
			return printYAML(thread)
		},
	}
}

func commentHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <comment-id>",
		Short: "Print the recorded changes of a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := initRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.services.EventService == nil {
				return errors.New("comment history requires the postgres storage driver")
			}
			events, err := rt.services.EventService.CommentHistory(ctx, args[0])
			if err != nil {
				return err
			}
			return printYAML(events)
		},
	}
}

func commentActivityCmd() *cobra.Command {
	var size, offset int

	cmd := &cobra.Command{
		Use:   "activity <actor>",
		Short: "Print the comment and reaction changes made by an actor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := initRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.services.EventService == nil {
				return errors.New("activity requires the postgres storage driver")
			}
			events, err := rt.services.EventService.ActorActivity(ctx, args[0], size, offset)
			if err != nil {
				return err
			}
			return printYAML(events)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "Number of events")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of events to skip")

	return cmd
}
