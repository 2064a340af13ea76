package cmd

import (
	"github.com/psantana5/peperone/internal/config"
	"github.com/psantana5/peperone/internal/timer"
	"github.com/spf13/cobra"
)

func newNewCmd(a *app) *cobra.Command {
	var force bool

	newCmd := &cobra.Command{
		Use:     "new [name]",
		Aliases: []string{"start", "s"},
		Short:   "Start a new timer",
		Long: `Start a timer by recording the current time under the given name.

Starting a timer that already exists fails unless --force is given, in which
case the old timer is replaced and starts again from zero.`,
		Args: optionalName,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.timerName(args)
			t, err := a.store(timer.WithOverwrite(force)).Create(name)
			if err != nil {
				return err
			}
			a.logger.Info().Str("timer", name).Msg("timer started")

			out := cmd.OutOrStdout()
			view := newTimerView(t, a.clock.Now())
			if ok, err := writeStructured(out, a.cfg.Output, view); ok {
				return err
			}
			if a.cfg.Output == config.OutputTable {
				return writeTimerDetails(out, view)
			}
			return nil
		},
	}

	newCmd.Flags().BoolVarP(&force, "force", "f", false, "replace the timer if it already exists")

	return newCmd
}
