package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	unsetEnv(t, "BANK_LOG_LEVEL")
	unsetEnv(t, "BANK_LOG_FORMAT")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("BANK_LOG_LEVEL", "debug")
	t.Setenv("BANK_LOG_FORMAT", "text")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
}

func TestProcessEnvironmentVariables_BadLevel(t *testing.T) {
	t.Setenv("BANK_LOG_LEVEL", "loud")
	unsetEnv(t, "BANK_LOG_FORMAT")

	cfg, err := ProcessEnvironmentVariables()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestProcessEnvironmentVariables_BadFormat(t *testing.T) {
	t.Setenv("BANK_LOG_LEVEL", "info")
	t.Setenv("BANK_LOG_FORMAT", "xml")

	_, err := ProcessEnvironmentVariables()
	assert.ErrorContains(t, err, "BANK_LOG_FORMAT")
}
