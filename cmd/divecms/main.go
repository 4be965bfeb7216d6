// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/divecms-go/internal/config"
	"github.com/olegiv/divecms-go/internal/handler"
	"github.com/olegiv/divecms-go/internal/handler/api"
	"github.com/olegiv/divecms-go/internal/imaging"
	"github.com/olegiv/divecms-go/internal/locale"
	"github.com/olegiv/divecms-go/internal/logging"
	"github.com/olegiv/divecms-go/internal/middleware"
	"github.com/olegiv/divecms-go/internal/model"
	"github.com/olegiv/divecms-go/internal/scheduler"
	"github.com/olegiv/divecms-go/internal/service"
	"github.com/olegiv/divecms-go/internal/store"
	"github.com/olegiv/divecms-go/internal/translation"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "divecms - multilingual content API for dive centers\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_DB_PATH              SQLite database path (default: ./data/divecms.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_SERVER_PORT          Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_ENV                  Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_DEFAULT_LOCALE       Locale stored on entity rows (default: en)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_SUPPORTED_LOCALES    Comma separated locale allow-list (default: en,ar)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_UPLOADS_DIR          Image upload directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_PRUNE_SCHEDULE       Cron schedule of the translation janitor, or \"off\"\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DCMS_DO_SEED              Seed demo content on an empty database\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("divecms %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
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

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.IsDevelopment())
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	resolver := locale.NewResolver(cfg.DefaultLocale, cfg.SupportedLocales)
	translator := translation.NewTranslator(db, translation.NewRegistry(model.TranslatableFields), resolver.Default(), logger)
	services := service.New(db, translator, logger)

	if cfg.DoSeed {
		seeded, err := service.Seed(context.Background(), services)
		if err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
		if seeded {
			slog.Info("demo content seeded", "locale", service.SeedLocale)
		}
	}

	sched := scheduler.New(translator, logger)
	if err := sched.Start(cfg.PruneSchedule); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	images := imaging.NewProcessor(cfg.UploadsDir)
	apiHandler := api.NewHandler(services, resolver, images, logger)
	healthHandler := handler.NewHealthHandler(db, cfg.UploadsDir)
	limiter := middleware.NewWriteRateLimiter(cfg.RateLimit, cfg.RateBurst)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	uploads := http.StripPrefix(model.UploadsURLPrefix, http.FileServer(http.Dir(cfg.UploadsDir)))
	r.With(chimw.SetHeader("Cache-Control", "public, max-age=604800")).
		Handle(model.UploadsURLPrefix+"*", uploads)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Locale(resolver, middleware.LocaleConfig{
			Header:     cfg.LocaleHeader,
			QueryParam: cfg.LocaleQueryParam,
		}))
		r.Use(limiter.Middleware())
		apiHandler.Routes(r)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteAPIError(w, http.StatusNotFound, "not_found", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed", nil)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // image uploads
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env,
			"version", appVersion, "locales", resolver.Supported())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
