package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/psantana5/peperone/internal/logging"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyDir          = "dir"
	KeyDefaultName  = "default_name"
	KeyTailInterval = "tail_interval"
	KeyOutput       = "output"
	KeyLogLevel     = "log_level"
)

// Output formats
const (
	OutputPlain = "plain"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

const (
	appName     = "peperone"
	envDir      = "PEPERONE_DIR"
	timersDir   = "timers"
	defaultName = "main"
)

// Config holds the effective settings for one invocation
type Config struct {
	Dir          string
	DefaultName  string
	TailInterval time.Duration
	Output       string
	LogLevel     string

	// File is the config file that was read, empty when none was found
	File string
}

// DefaultDir returns the per-user directory timers are stored in
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to find user config directory")
	}
	return filepath.Join(base, appName, timersDir), nil
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	if dir, err := DefaultDir(); err == nil {
		v.SetDefault(KeyDir, dir)
	}
	v.SetDefault(KeyDefaultName, defaultName)
	v.SetDefault(KeyTailInterval, time.Second)
	v.SetDefault(KeyOutput, OutputPlain)
	v.SetDefault(KeyLogLevel, logging.DefaultLevel.String())
}

// Load reads cfgFile, or config.yaml from the standard locations when cfgFile
// is empty, applies PEPERONE_DIR and returns the result.
// A missing config file in the standard locations is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	var cfg Config

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+appName))
		}
		if base, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(base, appName))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Only the timer directory may come from the environment
	v.BindEnv(KeyDir, envDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "failed to read config")
		}
	}

	cfg.File = v.ConfigFileUsed()
	cfg.Dir = expandHome(v.GetString(KeyDir))
	cfg.DefaultName = v.GetString(KeyDefaultName)
	cfg.TailInterval = v.GetDuration(KeyTailInterval)
	cfg.Output = strings.ToLower(v.GetString(KeyOutput))
	cfg.LogLevel = v.GetString(KeyLogLevel)

	return cfg, cfg.Validate()
}

// Validate checks the settings are usable
func (c Config) Validate() error {
	if c.Dir == "" {
		return errors.New("timer directory is not set")
	}
	if c.TailInterval <= 0 {
		return errors.Errorf("invalid %s: must be a positive duration", KeyTailInterval)
	}
	switch c.Output {
	case OutputPlain, OutputTable, OutputJSON, OutputYAML:
	default:
		return errors.Errorf("invalid output format %q: use plain, table, json or yaml", c.Output)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
