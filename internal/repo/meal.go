// Package repo contains the storage layer for the FeedMe API.
// The meal directory is memory-only by design for the MVP: contents are lost
// on restart, and nothing here talks to a database.
package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/feedme/backend/internal/domain"
)

// MealRepo defines the storage operations for the meal directory.
// The service layer depends on this interface, not the concrete in-memory
// implementation, which allows the service to be unit-tested with a mock.
type MealRepo interface {
	// Insert appends a meal to the directory. The caller is responsible for
	// assigning the ID and CreatedAt; no duplicate detection is performed.
	Insert(ctx context.Context, meal domain.Meal) error

	// Remove deletes the meal with the given ID and returns it.
	// Returns domain.ErrNotFound if no meal with that ID exists — a claimed
	// meal and one that never existed are indistinguishable.
	Remove(ctx context.Context, id string) (domain.Meal, error)

	// Snapshot returns a copy of all meals in insertion order. Callers may
	// filter and sort the result freely without holding any lock.
	Snapshot(ctx context.Context) ([]domain.Meal, error)

	// Sweep removes every meal created before cutoff and returns how many
	// were removed.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}

// memoryMealRepo holds the directory as a mutex-guarded slice. Insertion
// order is preserved so equal-distance query results surface in the order
// meals were shared.
type memoryMealRepo struct {
	mu    sync.RWMutex
	meals []domain.Meal
}

// NewMealRepo constructs an empty in-memory MealRepo. Construct it once in
// main and inject it; the directory must not live in package-level state.
func NewMealRepo() MealRepo {
	return &memoryMealRepo{}
}

func (r *memoryMealRepo) Insert(ctx context.Context, meal domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meals = append(r.meals, meal)
	return nil
}

func (r *memoryMealRepo) Remove(ctx context.Context, id string) (domain.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.meals {
		if m.ID == id {
			r.meals = append(r.meals[:i], r.meals[i+1:]...)
			return m, nil
		}
	}
	return domain.Meal{}, fmt.Errorf("repo.MealRepo.Remove: %w", domain.ErrNotFound)
}

func (r *memoryMealRepo) Snapshot(ctx context.Context) ([]domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Meal, len(r.meals))
	copy(out, r.meals)
	return out, nil
}

func (r *memoryMealRepo) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.meals[:0]
	removed := 0
	for _, m := range r.meals {
		if m.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	r.meals = kept
	return removed, nil
}
