package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/feedme/backend/internal/domain"
	"github.com/feedme/backend/internal/service"
)

// createMealRequest is the POST /api/meals body. Numeric fields are pointers
// so that a missing field is distinguishable from a legitimate zero; the
// combined validation message in the service covers both cases identically.
type createMealRequest struct {
	Description string   `json:"description"`
	Temperature string   `json:"temperature"`
	Portions    *float64 `json:"portions"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// claimResponse is the DELETE /api/meals/{id} success body.
type claimResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateMeal handles POST /api/meals.
func (s *Server) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unreadable body gets the same combined message as missing
		// fields; the caller cannot fix one without fixing the other.
		writeError(w, http.StatusBadRequest, service.SubmitRequiredMessage)
		return
	}

	meal, err := s.meals.Submit(r.Context(), service.SubmitMealInput{
		Description: req.Description,
		Temperature: req.Temperature,
		Portions:    req.Portions,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, unwrapMessage(err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, meal)
}

// ClaimMeal handles DELETE /api/meals/{id}.
func (s *Server) ClaimMeal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.meals.Claim(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "meal not found or already claimed")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, claimResponse{
		Success: true,
		Message: "meal marked as claimed, thank you!",
	})
}

// GetNearbyMeals handles GET /api/meals/nearby?latitude&longitude&radiusKm.
// radiusKm defaults to 2 when omitted. The response is a bare JSON array,
// empty ([]) rather than null when nothing matches.
func (s *Server) GetNearbyMeals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	latitude, latErr := strconv.ParseFloat(q.Get("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(q.Get("longitude"), 64)
	radiusKm := domain.DefaultRadiusKm
	var radErr error
	if raw := q.Get("radiusKm"); raw != "" {
		radiusKm, radErr = strconv.ParseFloat(raw, 64)
	}
	if latErr != nil || lonErr != nil || radErr != nil {
		writeError(w, http.StatusBadRequest, service.NearbyRequiredMessage)
		return
	}

	meals, err := s.meals.QueryNearby(r.Context(), latitude, longitude, radiusKm)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, unwrapMessage(err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, meals)
}
