package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/psantana5/peperone/internal/logging"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and XDG_CONFIG_HOME at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "peperone", "timers"), cfg.Dir)
	assert.Equal(t, "main", cfg.DefaultName)
	assert.Equal(t, time.Second, cfg.TailInterval)
	assert.Equal(t, OutputPlain, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, logging.DefaultLevel.String(), cfg.LogLevel)
	assert.Empty(t, cfg.File)
}

func TestLoadConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".peperone")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
dir: ~/stopwatches
default_name: work
tail_interval: 5s
output: TABLE
`), 0644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "stopwatches"), cfg.Dir)
	assert.Equal(t, "work", cfg.DefaultName)
	assert.Equal(t, 5*time.Second, cfg.TailInterval)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
}

func TestLoadEnvironmentOnlySetsDir(t *testing.T) {
	home := isolate(t)
	file := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("dir: /from/file\noutput: json\n"), 0644))
	t.Setenv("PEPERONE_DIR", "/from/env")
	t.Setenv("PEPERONE_OUTPUT", "yaml")
	t.Setenv("PEPERONE_DEFAULT_NAME", "other")
	t.Setenv("PEPERONE_TAIL_INTERVAL", "250ms")
	t.Setenv("PEPERONE_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Dir)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "main", cfg.DefaultName)
	assert.Equal(t, time.Second, cfg.TailInterval)
	assert.Equal(t, logging.DefaultLevel.String(), cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	home := isolate(t)

	_, err := Load(viper.New(), filepath.Join(home, "missing.yaml"))
	assert.Error(t, err, "an explicit config file must exist")

	bad := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: xml\n"), 0644))
	_, err = Load(viper.New(), bad)
	assert.Error(t, err)

	broken := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("dir: [unterminated\n"), 0644))
	_, err = Load(viper.New(), broken)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Dir: "/tmp/t", DefaultName: "main", TailInterval: time.Second, Output: OutputPlain}
	assert.NoError(t, valid.Validate())

	noDir := valid
	noDir.Dir = ""
	assert.Error(t, noDir.Validate())

	zeroInterval := valid
	zeroInterval.TailInterval = 0
	assert.Error(t, zeroInterval.Validate())
}
