package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "mappings.yaml", cfg.Store.File)
	assert.Equal(t, 15, cfg.Parser.ServiceFallbackMaxLen)
	assert.False(t, cfg.Export.IncludeZeroRows)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TALLY_LOG_LEVEL", "debug")
	t.Setenv("TALLY_PARSER_SERVICE_FALLBACK_MAX_LEN", "20")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Parser.ServiceFallbackMaxLen)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg, err := InitializeConfig()
		require.NoError(t, err)
		return cfg
	}

	cfg := valid()
	cfg.Log.Level = "verbose"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Store.File = ""
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Parser.ServiceFallbackMaxLen = -1
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.AI.Enabled = true
	cfg.AI.APIKey = ""
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.AI.Enabled = true
	cfg.AI.APIKey = "key"
	cfg.AI.TimeoutSeconds = 0
	assert.Error(t, validateConfig(cfg))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	cfg.Log.Level = "debug"
	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
