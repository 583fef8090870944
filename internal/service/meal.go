// Package service contains the business logic for the FeedMe API.
// Services validate inputs, enforce the freshness and radius rules, and
// orchestrate repo and audit-log calls. No HTTP or storage detail lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/feedme/backend/internal/auditlog"
	"github.com/feedme/backend/internal/domain"
	"github.com/feedme/backend/internal/geo"
	"github.com/feedme/backend/internal/repo"
)

// SubmitRequiredMessage is the single combined validation message for Submit.
// It deliberately names every required field rather than the offending one.
const SubmitRequiredMessage = "required fields: description (string), temperature ('hot'|'cold'), " +
	"portions (number > 0), latitude (number), longitude (number)"

// NearbyRequiredMessage is the combined validation message for QueryNearby.
const NearbyRequiredMessage = "required parameters: latitude (number), longitude (number), " +
	"radiusKm (number > 0, optional)"

// SubmitMealInput carries a giver's submission into the service layer.
// Portions, Latitude and Longitude are pointers so a missing field is
// distinguishable from a legitimate zero.
type SubmitMealInput struct {
	Description string
	Temperature string
	Portions    *float64
	Latitude    *float64
	Longitude   *float64
}

// MealService implements business logic for meal operations. It owns the
// directory handle and the (possibly no-op) audit log; audit failures are
// logged and swallowed, never surfaced to callers.
type MealService struct {
	repo repo.MealRepo
	log  auditlog.Log
}

// NewMealService constructs a MealService. Pass auditlog.Nop{} when no log
// store is configured.
func NewMealService(r repo.MealRepo, log auditlog.Log) *MealService {
	return &MealService{repo: r, log: log}
}

// Submit validates the input, stores a new meal in the directory, and
// best-effort appends an anonymous audit entry.
// Returns domain.ErrValidation (with the combined field message) on bad input.
func (s *MealService) Submit(ctx context.Context, input SubmitMealInput) (domain.Meal, error) {
	if err := validateSubmit(input); err != nil {
		return domain.Meal{}, err
	}

	meal := domain.Meal{
		ID:          uuid.NewString(),
		Description: truncate(input.Description, domain.MaxDescriptionLen),
		Temperature: domain.Temperature(input.Temperature),
		Portions:    *input.Portions,
		Latitude:    *input.Latitude,
		Longitude:   *input.Longitude,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, meal); err != nil {
		return domain.Meal{}, fmt.Errorf("service.MealService.Submit: %w", err)
	}

	// Post-commit: the meal is already stored, so a log failure must not
	// undo or fail the submission.
	if err := s.log.Append(ctx, auditlog.Entry{
		Timestamp:   meal.CreatedAt,
		Temperature: meal.Temperature,
		Portions:    meal.Portions,
	}); err != nil {
		slog.WarnContext(ctx, "audit log append failed", "error", err)
	}

	return meal, nil
}

// Claim removes the meal with the given ID from the directory and best-effort
// marks the matching audit entry as claimed.
// Returns domain.ErrNotFound when the meal was already claimed or never existed.
func (s *MealService) Claim(ctx context.Context, id string) error {
	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("service.MealService.Claim: %w", err)
	}

	if err := s.log.MarkClaimed(ctx, removed.CreatedAt, time.Now().UTC()); err != nil {
		slog.WarnContext(ctx, "audit log claim update failed", "error", err)
	}

	return nil
}

// QueryNearby returns unclaimed meals within radiusKm of the query point,
// no older than the freshness window, sorted by ascending distance.
// Equal distances keep insertion order. Pure read, no side effects.
func (s *MealService) QueryNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]domain.NearbyMeal, error) {
	if !isFinite(latitude) || !isFinite(longitude) || !isFinite(radiusKm) || radiusKm <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, NearbyRequiredMessage)
	}

	meals, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MealService.QueryNearby: %w", err)
	}

	now := time.Now()
	results := []domain.NearbyMeal{}
	for _, meal := range meals {
		if now.Sub(meal.CreatedAt) > domain.FreshnessWindow {
			continue
		}
		km := geo.HaversineKm(latitude, longitude, meal.Latitude, meal.Longitude)
		if km > radiusKm {
			continue
		}
		results = append(results, domain.NearbyMeal{
			Meal:          meal,
			DistanceKm:    km,
			DistanceLabel: geo.FormatDistanceLabel(km),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	return results, nil
}

// EvictStale removes meals older than the freshness window from the directory
// and returns how many were removed. The original MVP never evicts — stale
// meals just stop appearing in queries — so this runs only when an eviction
// interval is explicitly configured.
func (s *MealService) EvictStale(ctx context.Context) (int, error) {
	removed, err := s.repo.Sweep(ctx, time.Now().UTC().Add(-domain.FreshnessWindow))
	if err != nil {
		return 0, fmt.Errorf("service.MealService.EvictStale: %w", err)
	}
	return removed, nil
}

// validateSubmit enforces the creation rules. All failures share one combined
// message naming every required field.
func validateSubmit(input SubmitMealInput) error {
	ok := input.Description != "" &&
		domain.Temperature(input.Temperature).Valid() &&
		input.Portions != nil && isFinite(*input.Portions) && *input.Portions > 0 &&
		input.Latitude != nil && isFinite(*input.Latitude) &&
		input.Longitude != nil && isFinite(*input.Longitude)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrValidation, SubmitRequiredMessage)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// truncate caps s at max runes, never splitting a multi-byte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
