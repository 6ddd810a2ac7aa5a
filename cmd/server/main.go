// @title           Palette API
// @version         1.0.0
// @description     Backend for Palette: upload a photo of your space and an inspiration photo, pick a budget, and get a design plan with a renovation cost estimate.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"palette-backend/docs"
	"palette-backend/internal/config"
	"palette-backend/internal/database"
	"palette-backend/internal/generator"
	"palette-backend/internal/handlers"
	"palette-backend/internal/history"
	"palette-backend/internal/logger"
	"palette-backend/internal/metrics"
	"palette-backend/internal/services"
	"palette-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	store, closeStore, err := openHistory(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to open generation history", "driver", cfg.HistoryDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var images handlers.ImageStore
	if cfg.SupabaseConfigured() {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Warn("storage client unavailable, uploads disabled", "error", err)
		} else {
			images = storageClient
		}
	} else {
		log.Warn("SUPABASE_URL not set, uploads disabled")
	}

	if cfg.SupabaseJWTSecret == "" {
		log.Warn("SUPABASE_JWT_SECRET not set, authenticated routes will reject every request")
	}

	gen, err := generator.NewMockGenerator(cfg.GenerationDelay)
	if err != nil {
		log.Error("failed to load generator fixture", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	svc := services.NewGenerationService(gen, store, m, log)

	router := newRouter(routerDeps{
		cfg:     cfg,
		logger:  log,
		metrics: m,
		service: svc,
		images:  images,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           withCORS(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "history", cfg.HistoryDriver, "delay", cfg.GenerationDelay)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	log.Info("server exited")
}

// openHistory picks the generation history backend named by HISTORY_DRIVER.
func openHistory(ctx context.Context, cfg *config.Config, log *slog.Logger) (history.Store, func(), error) {
	noop := func() {}

	switch cfg.HistoryDriver {
	case config.HistoryPostgres:
		migrator, err := database.NewMigrator(cfg.DatabaseURL, log)
		if err != nil {
			return nil, noop, fmt.Errorf("migrator: %w", err)
		}
		applied, err := migrator.Run(ctx)
		migrator.Close()
		if err != nil {
			return nil, noop, fmt.Errorf("migrations: %w", err)
		}
		log.Info("migrations completed", "applied", len(applied))

		db, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return db, func() { db.Close() }, nil

	case config.HistorySupabase:
		client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey)
		if err != nil {
			return nil, noop, err
		}
		return supabase.NewRESTHistory(client), noop, nil

	case config.HistorySQLite:
		s, err := history.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { s.Close() }, nil

	default:
		return history.NopStore{}, noop, nil
	}
}
