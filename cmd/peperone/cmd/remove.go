package cmd

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm", "r", "del"},
		Short:   "Remove a timer",
		Long:    `Delete a timer permanently.`,
		Args:    optionalName,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.timerName(args)
			if err := a.store().Remove(name); err != nil {
				return err
			}
			a.logger.Info().Str("timer", name).Msg("timer removed")
			return nil
		},
	}
}
