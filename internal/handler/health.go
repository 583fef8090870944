package handler

import (
	"net/http"
	"time"
)

// healthResponse mirrors the original health payload. Redis is present only
// when a log collaborator is configured.
type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Redis     string `json:"redis,omitempty"`
}

// GetHealth handles GET /health.
// Always 200 while the process is up; a down redis is reported in the body,
// not in the status code, because the meal directory works without it.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Service:   "feedme-backend",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if s.redis != nil {
		resp.Redis = "ok"
		if err := s.redis.Ping(r.Context()); err != nil {
			resp.Redis = "unavailable"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
