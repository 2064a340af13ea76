package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/psantana5/peperone/internal/shutdown"
	"github.com/psantana5/peperone/internal/watch"
	"github.com/spf13/cobra"
)

func newTailCmd(a *app) *cobra.Command {
	var (
		interval time.Duration
		count    int
	)

	tailCmd := &cobra.Command{
		Use:     "tail [name]",
		Aliases: []string{"watch", "t"},
		Short:   "Follow the elapsed time of a timer",
		Long: `Print the elapsed time of a timer once per interval until interrupted.

If the timer is removed while it is being followed, tail reports it and exits.

Example:
  peperone tail
  peperone tail build --interval 5s
  peperone tail build --count 3`,
		Args: optionalName,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.timerName(args)
			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.TailInterval
			}
			if interval <= 0 {
				return usage(errors.Errorf("invalid interval %s: must be positive", interval))
			}
			if count < 0 {
				return usage(errors.Errorf("invalid count %d: must not be negative", count))
			}

			ctx, stop := shutdown.WithSignals(cmd.Context(), a.logger)
			defer stop()

			loop := &watch.Loop{
				Store:    a.store(),
				Clock:    a.clock,
				Interval: interval,
				Out:      cmd.OutOrStdout(),
				Logger:   a.logger,
				Count:    count,
			}

			err := loop.Run(ctx, name)
			if errors.Is(err, watch.ErrRemoved) {
				fmt.Fprintf(cmd.ErrOrStderr(), "peperone: timer %q no longer exists\n", name)
				return nil
			}
			return err
		},
	}

	tailCmd.Flags().DurationVar(&interval, "interval", watch.DefaultInterval, "how often to print the elapsed time")
	tailCmd.Flags().IntVar(&count, "count", 0, "stop after printing this many lines (0 = until interrupted)")

	return tailCmd
}
