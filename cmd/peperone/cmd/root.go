package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/psantana5/peperone/internal/config"
	"github.com/psantana5/peperone/internal/logging"
	"github.com/psantana5/peperone/internal/timer"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// usageError marks command line and configuration mistakes so they exit
// with timer.ExitUsage
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// app carries the per-invocation state shared by all subcommands
type app struct {
	cfgFile string
	cfg     config.Config
	logger  zerolog.Logger
	clock   timer.Clock
	fs      afero.Fs
}

// Option customizes the root command, mostly for tests
type Option func(*app)

// WithClock replaces the wall clock
func WithClock(c timer.Clock) Option {
	return func(a *app) {
		a.clock = c
	}
}

// WithFs replaces the filesystem timers are stored on
func WithFs(fs afero.Fs) Option {
	return func(a *app) {
		a.fs = fs
	}
}

// NewRootCmd builds the peperone command tree
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{
		clock:  timer.RealClock(),
		fs:     afero.NewOsFs(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "peperone",
		Short: "Minimal file-backed stopwatch",
		Long: `peperone keeps named stopwatches as small files on disk.

A timer only records when it was started, so there is nothing running in the
background: show, list and tail compute the elapsed time when you ask.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		// Unknown subcommands reach noArgs and exit with timer.ExitUsage
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(v, cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.peperone/config.yaml)")
	flags.String("dir", "", "directory timers are stored in")
	flags.StringP("output", "o", "", "output format: plain, table, json or yaml")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	v.BindPFlag(config.KeyDir, flags.Lookup("dir"))
	v.BindPFlag(config.KeyOutput, flags.Lookup("output"))
	v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usage(err)
	})

	rootCmd.AddCommand(
		newNewCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newTailCmd(a),
		newRemoveCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

func (a *app) init(v *viper.Viper, logOut io.Writer) error {
	cfg, err := config.Load(v, a.cfgFile)
	if err != nil {
		return usage(err)
	}
	a.cfg = cfg
	a.logger = logging.NewLogger(logOut, logging.ParseLevel(cfg.LogLevel), false)
	a.logger.Debug().Str("dir", cfg.Dir).Str("config", cfg.File).Msg("configuration loaded")
	return nil
}

func (a *app) store(opts ...timer.Option) *timer.FileStore {
	base := []timer.Option{
		timer.WithFs(a.fs),
		timer.WithClock(a.clock),
		timer.WithLogger(a.logger),
	}
	return timer.NewFileStore(a.cfg.Dir, append(base, opts...)...)
}

// timerName returns the name given on the command line or the configured default
func (a *app) timerName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.DefaultName
}

// optionalName accepts zero or one timer name
func optionalName(cmd *cobra.Command, args []string) error {
	return usage(cobra.MaximumNArgs(1)(cmd, args))
}

func noArgs(cmd *cobra.Command, args []string) error {
	return usage(cobra.NoArgs(cmd, args))
}

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return timer.ExitUsage
	}
	return timer.ExitCode(err)
}

// Execute runs the root command and returns the process exit code
func Execute(opts ...Option) int {
	return run(NewRootCmd(opts...))
}

func run(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "peperone: %v\n", err)
		return exitCode(err)
	}
	return timer.ExitOK
}
