// Package domain contains the core data types for the FeedMe application.
// This package has zero external dependencies beyond uuid-shaped string IDs
// and is imported by every other internal package (repo, service, handler).
package domain

import "time"

// Temperature describes whether a meal is served hot or cold.
// Only the two values below are accepted; anything else fails validation.
type Temperature string

const (
	TemperatureHot  Temperature = "hot"
	TemperatureCold Temperature = "cold"
)

// Valid reports whether t is one of the two accepted values.
func (t Temperature) Valid() bool {
	return t == TemperatureHot || t == TemperatureCold
}

const (
	// MaxDescriptionLen is the cap applied to descriptions at creation time.
	// Longer descriptions are silently truncated, not rejected.
	MaxDescriptionLen = 150

	// FreshnessWindow is the age beyond which a meal stops appearing in
	// nearby-query results. Meals older than this are NOT removed from the
	// directory; the window is evaluated at query time only.
	FreshnessWindow = 4 * time.Hour

	// DefaultRadiusKm is the search radius used when the caller omits one.
	DefaultRadiusKm = 2.0
)

// Meal represents a single shared meal offer published by a giver.
// JSON tags are camelCase because the frontend contract predates this server.
type Meal struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Temperature Temperature `json:"temperature"`
	Portions    float64     `json:"portions"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NearbyMeal is a meal decorated with its distance from a query point.
// DistanceLabel is the human form ("150m", "1.2km"); DistanceKm is for machines.
type NearbyMeal struct {
	Meal
	DistanceKm    float64 `json:"distanceKm"`
	DistanceLabel string  `json:"distanceLabel"`
}
