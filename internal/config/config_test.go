package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raikerian/go-turkish-dtmf/internal/config"
	"github.com/Raikerian/go-turkish-dtmf/pkg/dtmf"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, dtmf.DefaultPowerThreshold, cfg.Engine.PowerThreshold)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
engine:
  power_threshold: 2500
  turkish_casing: true
cache:
  tone_cache_size: 8
decode:
  workers: 2
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2500.0, cfg.Engine.PowerThreshold)
	assert.True(t, cfg.Engine.TurkishCasing)
	assert.False(t, cfg.Engine.SeparateRepeats)
	assert.Equal(t, 8, cfg.Cache.ToneCacheSize)
	assert.Equal(t, 2, cfg.Decode.Workers)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, "engine:\n  separate_repeats: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Engine.SeparateRepeats)
	assert.Equal(t, dtmf.DefaultPowerThreshold, cfg.Engine.PowerThreshold)
	assert.Equal(t, 64, cfg.Cache.ToneCacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := map[string]string{
		"malformed_yaml":     "engine: [",
		"negative_threshold": "engine:\n  power_threshold: -1\n",
		"unknown_log_level":  "log_level: verbose\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
