package handler

import "net/http"

// GetStats handles GET /api/stats.
// Returns the bucketed aggregate counters; always 200, with all-zero buckets
// when the log collaborator is absent or failing.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Aggregate(r.Context()))
}
