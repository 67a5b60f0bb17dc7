package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RECYCLING_REGISTRY_DATABASE_URL", "postgres://registry/recycling")
	t.Setenv("RECYCLING_TRACKER_DATABASE_URL", "postgres://tracker/scraper")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://registry/recycling", cfg.Registry.DatabaseURL)
	assert.Equal(t, "postgres://tracker/scraper", cfg.Tracker.DatabaseURL)
	assert.Equal(t, "postgres", cfg.Tracker.Driver)
	assert.Equal(t, "http://localhost:3000", cfg.Dashboard.BaseURL)
	assert.Equal(t, 30, cfg.Dashboard.TimeoutSecs)
	assert.Equal(t, 2, cfg.Reconcile.SubmitPauseSecs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingRegistryURL(t *testing.T) {
	t.Setenv("RECYCLING_REGISTRY_DATABASE_URL", "")
	t.Setenv("RECYCLING_TRACKER_DATABASE_URL", "postgres://tracker/scraper")
	t.Chdir(t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry.database_url")
}

func TestLoadMissingTrackerURL(t *testing.T) {
	t.Setenv("RECYCLING_REGISTRY_DATABASE_URL", "postgres://registry/recycling")
	t.Setenv("RECYCLING_TRACKER_DATABASE_URL", "")
	t.Chdir(t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracker.database_url")
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "not-a-level", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
