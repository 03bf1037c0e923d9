package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, ".recipebook-logs/recipebook.log", cfg.LogFile)
	assert.Equal(t, "normal", cfg.LogLevel)
	assert.False(t, cfg.Ephemeral)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/env.db")
	t.Setenv(EnvLogFile, "stderr")
	t.Setenv(EnvLogLevel, "verbose")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "stderr", cfg.LogFile)
	assert.Equal(t, "verbose", cfg.LogLevel)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/env.db")
	t.Setenv(EnvLogLevel, "verbose")

	cfg, err := Load([]string{"-db", "/tmp/flag.db", "-quiet", "-ephemeral"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.db", cfg.DBPath)
	assert.Equal(t, "off", cfg.LogLevel)
	assert.True(t, cfg.Ephemeral)
}

func TestLoadRejectsConflictingVerbosity(t *testing.T) {
	_, err := Load([]string{"-verbose", "-quiet"})
	assert.Error(t, err)
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	_, err := Load([]string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Ephemeral: true}).Validate())
	assert.NoError(t, (&Config{DBPath: "x.db"}).Validate())
}
