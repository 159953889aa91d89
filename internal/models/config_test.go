package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menuengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(viper.New(), writeConfig(t, "log_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultEngineSettings(), cfg.Engine)
	assert.Equal(t, "file", cfg.Input.Source)
	assert.Equal(t, "console", cfg.Output.Destination)
	assert.Equal(t, 100*time.Millisecond, cfg.Kafka.RetryBackoff)
	assert.Equal(t, 30, cfg.Database.TrailingWindowDays)
	assert.Equal(t, int64(42), cfg.Simulate.Seed)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
engine:
  mode: adaptive
  currency_symbol: "Rp "
  features:
    bundles: false
  max_initial_items_per_category: 6
input:
  source: postgres
  restaurant_ids: r1,r2
output:
  destination: kafka
database:
  trailing_window_days: 14
kafka:
  dial_timeout: 5s
`)

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, EngineModeAdaptive, cfg.Engine.Mode)
	assert.Equal(t, "Rp ", cfg.Engine.CurrencySymbol)
	assert.False(t, cfg.Engine.Features.Bundles)
	assert.True(t, cfg.Engine.Features.MoodFlow)
	assert.Equal(t, 6, cfg.Engine.MaxInitialItemsPerCategory)
	assert.Equal(t, []string{"r1", "r2"}, cfg.Input.RestaurantIDs)
	assert.Equal(t, "kafka", cfg.Output.Destination)
	assert.Equal(t, 5*time.Second, cfg.Kafka.DialTimeout)
	assert.Equal(t, 14, cfg.Database.TrailingWindowDays)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	_, err := loadConfig(viper.New(), writeConfig(t, "engine:\n  mode: aggressive\n"))
	assert.ErrorIs(t, err, ErrUnknownEngineMode)

	_, err = loadConfig(viper.New(), writeConfig(t, "input:\n  source: ftp\n"))
	assert.ErrorIs(t, err, ErrUnknownInputSource)

	_, err = loadConfig(viper.New(), writeConfig(t, "output:\n  destination: fax\n"))
	assert.ErrorIs(t, err, ErrUnknownOutputDestination)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
