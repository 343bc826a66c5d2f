// ABOUTME: Entry point for the VNF placement evaluation backend service
// ABOUTME: Provides an HTTP API that checks service chain placements against node and link capacity

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

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/cache"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/config"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/handlers"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/logger"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/metrics"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/middleware"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logging
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	slog.Info("Starting VNF Placement Evaluator Backend")

	// Build the capacity model
	model, err := models.NewCapacityModel(cfg.NumNodes, cfg.NumVNFTypes)
	if err != nil {
		slog.Error("Failed to build capacity model", "error", err,
			"nodes", cfg.NumNodes, "vnf_types", cfg.NumVNFTypes)
		os.Exit(1)
	}
	slog.Info("Capacity model loaded", "nodes", model.NumNodes(), "vnf_types", model.NumVNFTypes())

	// Initialize cache
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	defer c.Close()
	slog.Info("Cache initialized", "ttl", cacheTTL)

	var rec *metrics.Recorder
	if cfg.MetricsEnabled {
		rec = metrics.NewRecorder()
	}

	h := handlers.NewHandler(cfg, model, c, rec)

	var sampleLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		sampleLimiter = middleware.NewRateLimiter(cfg.RateLimitSample, time.Minute)
		slog.Info("Rate limiting enabled", "sample_per_minute", cfg.RateLimitSample)
	}

	opts := handlers.RouterOptions{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SampleLimiter:  sampleLimiter,
	}
	if rec != nil {
		opts.MetricsHandler = rec.Handler()
		slog.Info("Metrics enabled", "path", "/metrics")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.NewServeMux(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
