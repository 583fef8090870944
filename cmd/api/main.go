// Package main is the entry point for the FeedMe API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/feedme/backend/internal/auditlog"
	"github.com/feedme/backend/internal/config"
	"github.com/feedme/backend/internal/handler"
	"github.com/feedme/backend/internal/middleware"
	"github.com/feedme/backend/internal/repo"
	"github.com/feedme/backend/internal/service"
)

// maxBodyBytes caps incoming request bodies. Meal submissions are tiny; one
// MiB leaves generous headroom.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for log
	// aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Audit log (optional) ---------------------------------------------
	// The anonymous meal log is a capability: without REDIS_URL the service
	// runs with a no-op log and /api/stats reports zeroes. A redis that is
	// configured but unreachable at boot is tolerated too — every call is
	// best-effort with its own timeout.
	var mealLog auditlog.Log = auditlog.Nop{}
	var pinger handler.Pinger
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		redisLog := auditlog.NewRedisLog(client, cfg.RedisTimeout)
		if err := redisLog.Ping(context.Background()); err != nil {
			slog.Warn("redis unreachable at startup, meal log degraded", "error", err)
		} else {
			slog.Info("redis connection established")
		}
		mealLog = redisLog
		pinger = redisLog
	}

	// --- Services ---------------------------------------------------------
	// The directory is a single in-memory store owned here and injected into
	// the services; its contents are lost on restart, by design for the MVP.
	directory := repo.NewMealRepo()
	mealService := service.NewMealService(directory, mealLog)
	statsService := service.NewStatsService(mealLog)

	// --- Eviction sweep (optional) ----------------------------------------
	// Off by default: the original keeps stale meals in memory forever and
	// only hides them from queries. Set EVICTION_INTERVAL to enable the sweep.
	ctx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	if cfg.EvictionInterval > 0 {
		go runSweeper(ctx, mealService, cfg.EvictionInterval)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger →
	// Recoverer → CORS → MaxBodySize.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srv := handler.NewServer(mealService, statsService, pinger)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")
	cancelSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runSweeper evicts stale meals on a fixed interval until ctx is cancelled.
func runSweeper(ctx context.Context, meals *service.MealService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := meals.EvictStale(ctx)
			if err != nil {
				slog.Error("eviction sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("evicted stale meals", "count", removed)
			}
		}
	}
}
