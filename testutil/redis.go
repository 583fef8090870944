// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when required environment
// variables are not set, so unit tests can run without a running redis.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens a *redis.Client connected to the instance specified by the
// TEST_REDIS_URL environment variable (e.g. "redis://localhost:6379/15").
//
// The test is skipped automatically if TEST_REDIS_URL is not set, so
// integration tests are opt-in and never break CI environments without redis.
// The database is flushed before the test and the client is closed when the
// test (and all its subtests) finish — point TEST_REDIS_URL at a throwaway DB.
func NewRedis(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping integration test")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("testutil.NewRedis: parse url: %v", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: ping: %v", err)
	}
	if err := client.FlushDB(context.Background()).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: flushdb: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}
