package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/feedme/backend/internal/config"
)

// TestLoad_defaults verifies that every variable falls back to its default
// when nothing is set. Nothing is required: the service runs redis-less.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_TIMEOUT", "")
	t.Setenv("EVICTION_INTERVAL", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, 2*time.Second, cfg.RedisTimeout)
	require.Zero(t, cfg.EvictionInterval)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://feedme.example, https://staging.feedme.example")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_TIMEOUT", "500ms")
	t.Setenv("EVICTION_INTERVAL", "15m")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://feedme.example", "https://staging.feedme.example"}, cfg.CORSOrigins)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, 500*time.Millisecond, cfg.RedisTimeout)
	require.Equal(t, 15*time.Minute, cfg.EvictionInterval)
}

func TestLoad_invalidDuration(t *testing.T) {
	t.Setenv("EVICTION_INTERVAL", "often")

	_, err := config.Load()

	require.Error(t, err)
	require.Contains(t, err.Error(), "EVICTION_INTERVAL")
}
