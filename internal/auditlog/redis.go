package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// logKey is the single well-known key holding the whole log as a JSON array.
// The log is small (one entry per shared meal) so read-modify-write of the
// full blob is acceptable for the MVP.
const logKey = "feedme:meal-log"

// RedisLog stores the log in redis under logKey. All calls are bounded by
// the timeout given at construction; the caller's context is further
// restricted, never extended.
type RedisLog struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisLog constructs a RedisLog on the given client. timeout caps every
// outbound call; pass the configured REDIS_TIMEOUT.
func NewRedisLog(client *redis.Client, timeout time.Duration) *RedisLog {
	return &RedisLog{client: client, timeout: timeout}
}

// Ping reports whether redis is reachable. Used by the health endpoint.
func (l *RedisLog) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	if err := l.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("auditlog.RedisLog.Ping: %w", err)
	}
	return nil
}

func (l *RedisLog) Append(ctx context.Context, entry Entry) error {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	entries, err := l.load(ctx)
	if err != nil {
		return fmt.Errorf("auditlog.RedisLog.Append: %w", err)
	}
	entries = append(entries, entry)
	if err := l.store(ctx, entries); err != nil {
		return fmt.Errorf("auditlog.RedisLog.Append: %w", err)
	}
	return nil
}

func (l *RedisLog) MarkClaimed(ctx context.Context, createdAt, claimedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	entries, err := l.load(ctx)
	if err != nil {
		return fmt.Errorf("auditlog.RedisLog.MarkClaimed: %w", err)
	}
	if !markClaimed(entries, createdAt, claimedAt) {
		// Nothing to update; the meal predates the log or redis was down
		// when it was shared. Not an error worth surfacing.
		return nil
	}
	if err := l.store(ctx, entries); err != nil {
		return fmt.Errorf("auditlog.RedisLog.MarkClaimed: %w", err)
	}
	return nil
}

func (l *RedisLog) All(ctx context.Context) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	entries, err := l.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("auditlog.RedisLog.All: %w", err)
	}
	return entries, nil
}

func (l *RedisLog) load(ctx context.Context) ([]Entry, error) {
	raw, err := l.client.Get(ctx, logKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode log: %w", err)
	}
	return entries, nil
}

func (l *RedisLog) store(ctx context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode log: %w", err)
	}
	return l.client.Set(ctx, logKey, raw, 0).Err()
}
