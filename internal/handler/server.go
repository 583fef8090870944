// Package handler implements the HTTP layer of the FeedMe API.
// All handlers are methods on Server; they are split into resource-specific
// files (meal.go, stats.go, health.go) but share the same struct so they can
// access its dependencies. The JSON wire format is fixed by the frontend
// contract: camelCase fields, bare arrays for list responses.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feedme/backend/internal/domain"
	"github.com/feedme/backend/internal/service"
)

// MealServicer defines the business operations the meal handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the directory or service layer.
type MealServicer interface {
	Submit(ctx context.Context, input service.SubmitMealInput) (domain.Meal, error)
	Claim(ctx context.Context, id string) error
	QueryNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]domain.NearbyMeal, error)
}

// StatsServicer defines the aggregation operation the stats handler depends on.
type StatsServicer interface {
	Aggregate(ctx context.Context) service.Stats
}

// Pinger reports whether the optional log collaborator is reachable.
// Nil means no collaborator is configured and /health omits the redis field.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements all API endpoints. Wire it in main.go via Routes().
type Server struct {
	meals MealServicer
	stats StatsServicer
	redis Pinger
}

// NewServer constructs the Server with all its dependencies.
// Pass nil for redis when no log store is configured.
func NewServer(meals MealServicer, stats StatsServicer, redis Pinger) *Server {
	return &Server{meals: meals, stats: stats, redis: redis}
}

// Routes returns the router for all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/meals", s.CreateMeal)
		r.Get("/meals/nearby", s.GetNearbyMeals)
		r.Delete("/meals/{id}", s.ClaimMeal)
		r.Get("/stats", s.GetStats)
	})
	return r
}
