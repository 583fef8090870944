package auditlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedme/backend/internal/auditlog"
	"github.com/feedme/backend/internal/domain"
	"github.com/feedme/backend/testutil"
)

// Integration test for the redis-backed log. Skipped automatically when
// TEST_REDIS_URL is not set.
func TestRedisLog_RoundTrip(t *testing.T) {
	client := testutil.NewRedis(t)
	log := auditlog.NewRedisLog(client, 2*time.Second)
	ctx := context.Background()

	require.NoError(t, log.Ping(ctx))

	// Empty log reads as empty, not as an error.
	entries, err := log.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	created := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	require.NoError(t, log.Append(ctx, auditlog.Entry{
		Timestamp:   created,
		Temperature: domain.TemperatureHot,
		Portions:    2,
	}))
	require.NoError(t, log.Append(ctx, auditlog.Entry{
		Timestamp:   created.Add(time.Minute),
		Temperature: domain.TemperatureCold,
		Portions:    1,
	}))

	require.NoError(t, log.MarkClaimed(ctx, created, created.Add(30*time.Minute)))

	entries, err = log.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].Claimed)
	require.NotNil(t, entries[0].ClaimedAt)
	assert.True(t, entries[0].ClaimedAt.Equal(created.Add(30*time.Minute)))
	assert.False(t, entries[1].Claimed)
}

// MarkClaimed with no matching entry is a silent no-op.
func TestRedisLog_MarkClaimed_NoMatch(t *testing.T) {
	client := testutil.NewRedis(t)
	log := auditlog.NewRedisLog(client, 2*time.Second)
	ctx := context.Background()

	require.NoError(t, log.MarkClaimed(ctx, time.Now().UTC(), time.Now().UTC()))

	entries, err := log.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
