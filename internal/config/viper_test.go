package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test. It mirrors
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from an isolated directory so a developer's config file is not
	// picked up.
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "data", cfg.Data.Directory)
	assert.Equal(t, "auto", cfg.Import.DateFormat)
	assert.Equal(t, "balance", cfg.Import.StatementType)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BANKBOOK_IMPORT_DATE_FORMAT", "dmy")
	t.Setenv("BANKBOOK_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "dmy", cfg.Import.DateFormat)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		hasError bool
	}{
		{"Valid defaults", func(c *Config) {}, false},
		{"Bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"Bad date format", func(c *Config) { c.Import.DateFormat = "dd/mm" }, true},
		{"Bad statement type", func(c *Config) { c.Import.StatementType = "mixed" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Log.Level = "info"
			cfg.Log.Format = "text"
			cfg.Import.DateFormat = "auto"
			cfg.Import.StatementType = "balance"
			tc.mutate(cfg)

			err := validateConfig(cfg)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "not-a-level"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BANKBOOK_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("BANKBOOK_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BANKBOOK_MISSING_KEY", "fallback"))
}
