package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/feedme/backend/internal/auditlog"
	"github.com/feedme/backend/internal/domain"
)

// Bucket holds aggregate counts for one time window.
type Bucket struct {
	Shared   int     `json:"shared"`
	Claimed  int     `json:"claimed"`
	Portions float64 `json:"portions"`
	Hot      int     `json:"hot"`
	Cold     int     `json:"cold"`
}

// Stats is the /api/stats payload: the same counters bucketed by age.
type Stats struct {
	Today Bucket `json:"today"`
	Week  Bucket `json:"week"`
	Month Bucket `json:"month"`
	Year  Bucket `json:"year"`
	Total Bucket `json:"total"`
}

// StatsService aggregates the anonymous audit log for the public counters.
type StatsService struct {
	log auditlog.Log
}

// NewStatsService constructs a StatsService over the given log.
// With auditlog.Nop the service reports all-zero stats.
func NewStatsService(log auditlog.Log) *StatsService {
	return &StatsService{log: log}
}

// Aggregate computes counts per window. A failing log store degrades to
// all-zero stats rather than an error: the counters are cosmetic and must
// never take the landing page down with them.
func (s *StatsService) Aggregate(ctx context.Context) Stats {
	entries, err := s.log.All(ctx)
	if err != nil {
		slog.WarnContext(ctx, "audit log read failed, serving zero stats", "error", err)
		return Stats{}
	}
	return aggregate(entries, time.Now().UTC())
}

// aggregate buckets entries relative to now. Windows: today is since midnight
// UTC; week, month and year are rolling 7/30/365-day windows; total is
// everything. Portions counts only claimed entries — portions actually
// handed over, not merely offered.
func aggregate(entries []auditlog.Entry, now time.Time) Stats {
	var stats Stats

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windows := []struct {
		since  time.Time
		bucket *Bucket
	}{
		{startOfDay, &stats.Today},
		{now.AddDate(0, 0, -7), &stats.Week},
		{now.AddDate(0, 0, -30), &stats.Month},
		{now.AddDate(0, 0, -365), &stats.Year},
		{time.Time{}, &stats.Total},
	}

	for _, e := range entries {
		for _, w := range windows {
			if e.Timestamp.Before(w.since) {
				continue
			}
			w.bucket.Shared++
			if e.Claimed {
				w.bucket.Claimed++
				w.bucket.Portions += e.Portions
			}
			switch e.Temperature {
			case domain.TemperatureHot:
				w.bucket.Hot++
			case domain.TemperatureCold:
				w.bucket.Cold++
			}
		}
	}

	return stats
}
