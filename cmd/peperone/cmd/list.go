package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/psantana5/peperone/internal/config"
	"github.com/psantana5/peperone/internal/timer"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List timers",
		Long: `List the names of all stored timers, one per line, in lexical order.

With --output table, json or yaml each timer is read as well; timers whose
record cannot be read are skipped with a warning.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.store()
			names, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Output == config.OutputPlain {
				for _, name := range names {
					if _, err := fmt.Fprintln(out, name); err != nil {
						return err
					}
				}
				return nil
			}

			now := a.clock.Now()
			views := make([]timerView, 0, len(names))
			for _, name := range names {
				t, err := store.Read(name)
				if err != nil {
					switch {
					// Removed by another process since List
					case errors.Is(err, timer.ErrNotFound):
						continue
					case errors.Is(err, timer.ErrStorageIO):
						a.logger.Warn().Err(err).Str("timer", name).Msg("skipping unreadable timer")
						continue
					}
					return err
				}
				views = append(views, newTimerView(t, now))
			}

			if ok, err := writeStructured(out, a.cfg.Output, views); ok {
				return err
			}
			return writeTimersTable(out, views)
		},
	}
}
