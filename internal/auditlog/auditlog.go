// Package auditlog maintains the anonymous meal log used by /api/stats.
// Entries carry no location and no description — only when a meal was shared,
// its temperature and portions, and whether it was later claimed.
//
// The log is an optional collaborator: when no redis is configured the
// service is wired with Nop and every operation is a cheap no-op. Callers
// must treat every write as best-effort and never fail a meal operation on a
// log error.
package auditlog

import (
	"context"
	"time"

	"github.com/feedme/backend/internal/domain"
)

// Entry is one anonymous log record. Entries are appended on meal creation
// and mutated in place (Claimed flipped) when the meal is claimed.
type Entry struct {
	Timestamp   time.Time          `json:"timestamp"`
	Temperature domain.Temperature `json:"temperature"`
	Portions    float64            `json:"portions"`
	Claimed     bool               `json:"claimed"`
	ClaimedAt   *time.Time         `json:"claimedAt,omitempty"`
}

// Log defines the operations the meal and stats services need.
type Log interface {
	// Append records that a meal was shared.
	Append(ctx context.Context, entry Entry) error

	// MarkClaimed flips the Claimed flag on the oldest unclaimed entry whose
	// Timestamp matches createdAt. Entries hold no meal ID, so the creation
	// timestamp is the only correlation key available.
	MarkClaimed(ctx context.Context, createdAt, claimedAt time.Time) error

	// All returns every entry ever appended.
	All(ctx context.Context) ([]Entry, error)
}

// markClaimed applies the MarkClaimed rule to an in-memory entry list and
// reports whether a matching entry was found. Shared by implementations so
// the matching rule is defined (and tested) in one place.
func markClaimed(entries []Entry, createdAt, claimedAt time.Time) bool {
	for i := range entries {
		if !entries[i].Claimed && entries[i].Timestamp.Equal(createdAt) {
			entries[i].Claimed = true
			at := claimedAt
			entries[i].ClaimedAt = &at
			return true
		}
	}
	return false
}

// Nop is the Log used when no redis is configured. Writes vanish and reads
// are empty, so /api/stats degrades to all-zero counts.
type Nop struct{}

func (Nop) Append(ctx context.Context, entry Entry) error { return nil }

func (Nop) MarkClaimed(ctx context.Context, createdAt, claimedAt time.Time) error { return nil }

func (Nop) All(ctx context.Context) ([]Entry, error) { return nil, nil }
