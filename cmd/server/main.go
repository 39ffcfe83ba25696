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

	"github.com/motionhq/motion/api/internal/config"
	"github.com/motionhq/motion/api/internal/handler"
	"github.com/motionhq/motion/api/internal/jobs"
	"github.com/motionhq/motion/api/internal/middleware"
	"github.com/motionhq/motion/api/internal/repository"
	"github.com/motionhq/motion/api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to the configured store
	ctx := context.Background()
	storeCfg, err := repository.ConfigFrom(cfg)
	if err != nil {
		slog.Error("invalid store configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	stores, err := repository.Open(ctx, storeCfg)
	if err != nil {
		slog.Error("failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = stores.Close() }()

	slog.Info("store ready", slog.String("driver", string(stores.Driver)))

	// Initialize services
	adventureService := service.NewAdventureService(service.AdventureServiceConfig{Repo: stores.Adventures})
	reviewService := service.NewReviewService(service.ReviewServiceConfig{Repo: stores.Reviews})
	albumService := service.NewAlbumService(service.AlbumServiceConfig{Repo: stores.Albums})
	adminService := service.NewAdminService(service.AdminServiceConfig{Profiles: stores.Profiles})

	backendClient := service.NewBackendClient(service.BackendConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	})

	// Initialize metrics
	metrics := middleware.NewMetrics()

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RPS:   cfg.RateLimit.RPS,
		Burst: cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store: Redis when configured, memory otherwise
	idempotencyStore, stopIdempotency, err := newIdempotencyStore(ctx, cfg.Redis.URL)
	if err != nil {
		slog.Error("failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer stopIdempotency()

	// Start background jobs
	if cfg.Backend.MonitorSchedule != "" {
		monitor, err := jobs.NewBackendMonitor(jobs.BackendMonitorConfig{
			Prober:   backendClient,
			Gauge:    metrics,
			Schedule: cfg.Backend.MonitorSchedule,
		})
		if err != nil {
			slog.Error("failed to create backend monitor", slog.String("error", err.Error()))
			os.Exit(1)
		}
		monitor.Start()
		defer monitor.Stop()
	}

	// Initialize handlers and routes
	routes := &handler.Routes{
		Health:     handler.NewHealthHandler(stores.Pinger, stores.Driver, backendClient),
		Adventures: handler.NewAdventureHandler(adventureService),
		Reviews:    handler.NewReviewHandler(reviewService),
		Albums:     handler.NewAlbumHandler(albumService),
		Admin:      handler.NewAdminHandler(adminService),
		Proxy:      handler.NewProxyHandler(backendClient, metrics),
		Metrics:    metrics.Handler(),
	}
	mux := routes.NewMux()

	// Apply global middleware. Idempotency sits inside Compress so cached
	// bodies are stored uncompressed.
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		metrics.Middleware,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
		middleware.Idempotency(idempotencyStore),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("backend", cfg.Backend.URL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
