// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] — the MVP serves a public, unauthenticated API.
	// Set CORS_ORIGINS to a comma-separated list to restrict it.
	CORSOrigins []string

	// RedisURL is the connection string for the anonymous meal log
	// (e.g. "redis://localhost:6379/0"). Empty disables the log entirely:
	// the directory works as usual and /api/stats reports zeroes.
	RedisURL string

	// RedisTimeout caps every outbound redis call. Defaults to 2s.
	RedisTimeout time.Duration

	// EvictionInterval is how often stale meals are swept from the
	// directory. Zero (the default) disables the sweep, matching the
	// original behavior where stale meals only vanish from query results.
	EvictionInterval time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when a duration variable cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	var err error
	cfg.RedisTimeout, err = getDuration("REDIS_TIMEOUT", 2*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.EvictionInterval, err = getDuration("EVICTION_INTERVAL", 0)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses the environment variable named by key as a time.Duration
// ("2s", "15m"), or returns fallback if the variable is not set or is empty.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
