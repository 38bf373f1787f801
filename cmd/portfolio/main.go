// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/alqudimi/portfolio-go/internal/cache"
	"github.com/alqudimi/portfolio-go/internal/config"
	"github.com/alqudimi/portfolio-go/internal/geoip"
	"github.com/alqudimi/portfolio-go/internal/handler"
	"github.com/alqudimi/portfolio-go/internal/logging"
	"github.com/alqudimi/portfolio-go/internal/scheduler"
	"github.com/alqudimi/portfolio-go/internal/service"
	"github.com/alqudimi/portfolio-go/internal/storage"
	"github.com/alqudimi/portfolio-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "portfolio - Alqudimi Technology portfolio backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DATABASE_URL                  Database URL; empty runs on the in-memory backend\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SERVER_PORT         Server port (default: 5000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ENV                 Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_API_TOKEN           Admin API bearer token (empty disables admin routes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_REDIS_URL           Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_GEOIP_DB_PATH       GeoLite2-Country.mmdb path (optional)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("portfolio %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create version info from build-time injected values
	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger. The recent-entries ring buffer feeds the admin
	// diagnostics endpoint.
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	recentHandler := logging.NewRecentHandler(textHandler)
	logger := slog.New(recentHandler)
	slog.SetDefault(logger)

	// Initialize storage. This must complete before the HTTP listener
	// binds so the first request never races the backend selection.
	mgr := storage.NewManager(storage.ManagerConfig{
		DatabaseURL:   cfg.DatabaseURL,
		RelaxTLS:      cfg.IsDevelopment(),
		AdminUsername: cfg.AdminUsername,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}, logger)

	ctx := context.Background()
	if err := mgr.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() {
		if err := mgr.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()
	slog.Info("storage ready", "using_database", mgr.UsingDatabase())

	// GeoIP is optional; a missing or broken database degrades country
	// resolution to "" instead of failing startup.
	geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		slog.Warn("geoip database unavailable, country resolution disabled",
			"path", cfg.GeoIPDBPath, "error", err)
	}
	defer func() {
		_ = geo.Close()
	}()

	// Content cache: Redis when configured, in-process memory otherwise.
	backend := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:    cfg.CacheMaxSize,
	}, logger)
	defer func() {
		_ = backend.Close()
	}()
	content := cache.NewContentCache(backend, time.Duration(cfg.CacheTTL)*time.Second)

	blogSvc := service.NewBlogService(mgr, logger)
	analyticsSvc := service.NewAnalyticsService(mgr, geo, logger, cfg.AnalyticsRetentionDays)

	h := handler.NewHandler(handler.Options{
		Manager:   mgr,
		Content:   content,
		Blog:      blogSvc,
		Analytics: analyticsSvc,
		Config:    cfg,
		Log:       logger,
		Version:   versionInfo,
		Recent:    recentHandler.Recent,
	})

	// Background jobs: database reconnection, analytics pruning, GeoIP
	// database reloads.
	sched := scheduler.New(mgr, analyticsSvc, geo, logger)
	if err := sched.Start(cfg.ReconnectSpec); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	if !cfg.AdminAPIEnabled() {
		slog.Warn("no API token configured, admin endpoints are disabled")
	}

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			"addr", cfg.ServerAddr(),
			"env", cfg.Env,
			"version", versionInfo.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
