package cmd

import (
	"github.com/pkg/errors"
	"github.com/psantana5/peperone/internal/config"
	"github.com/spf13/cobra"
)

type configView struct {
	File         string `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	Dir          string `json:"dir" yaml:"dir"`
	DefaultName  string `json:"default_name" yaml:"default_name"`
	TailInterval string `json:"tail_interval" yaml:"tail_interval"`
	Output       string `json:"output" yaml:"output"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after merging defaults, the config file,
PEPERONE_* environment variables and command line flags.

Printed as yaml unless --output json is given.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := configView{
				File:         a.cfg.File,
				Dir:          a.cfg.Dir,
				DefaultName:  a.cfg.DefaultName,
				TailInterval: a.cfg.TailInterval.String(),
				Output:       a.cfg.Output,
				LogLevel:     a.cfg.LogLevel,
			}

			format := a.cfg.Output
			if format != config.OutputJSON {
				format = config.OutputYAML
			}
			ok, err := writeStructured(cmd.OutOrStdout(), format, view)
			if !ok {
				return errors.Errorf("unsupported config output format %q", format)
			}
			return err
		},
	}
}
