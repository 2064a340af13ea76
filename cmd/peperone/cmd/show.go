package cmd

import (
	"fmt"

	"github.com/psantana5/peperone/internal/config"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var quiet bool

	showCmd := &cobra.Command{
		Use:     "show [name]",
		Aliases: []string{"cat", "info", "view", "status"},
		Short:   "Show the elapsed time of a timer",
		Long: `Print how long ago the timer was started, as MM:SS or HH:MM:SS.

With --quiet only the whole number of elapsed seconds is printed.`,
		Args: optionalName,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.store().Read(a.timerName(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			view := newTimerView(t, a.clock.Now())
			if quiet {
				_, err := fmt.Fprintln(out, view.ElapsedSeconds)
				return err
			}
			if ok, err := writeStructured(out, a.cfg.Output, view); ok {
				return err
			}
			if a.cfg.Output == config.OutputTable {
				return writeTimerDetails(out, view)
			}
			_, err = fmt.Fprintln(out, view.Elapsed)
			return err
		},
	}

	showCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print elapsed seconds only")

	return showCmd
}
