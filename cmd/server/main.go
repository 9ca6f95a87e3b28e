package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"agelookup/internal/agify"
	"agelookup/internal/config"
	"agelookup/internal/db"
	"agelookup/internal/loader"
	"agelookup/internal/logging"
	"agelookup/internal/metrics"
	"agelookup/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// Load YAML page config (optional)
	pages, err := config.LoadYAMLConfig()
	if err != nil {
		logger.Error("failed to load YAML config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routes := server.Routes{Pages: pages}

	// Lookup outcome persistence is optional
	var store metrics.OutcomeStore
	if cfg.HasDatabase() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations completed successfully")

		prometheus.MustRegister(metrics.NewOutcomeCollector(database, logger))
		store = database
		routes.DB = database
	} else {
		logger.Info("DATABASE_URL not set, lookup outcomes will not be persisted")
	}

	recorder := metrics.NewRecorder(metrics.NewMetrics(), store, logger)

	client := agify.NewClient(cfg.AgifyBaseURL, cfg.AgifyTimeout, logger)
	routes.Loader = loader.New(client, logger,
		loader.WithErrorMessage(pages.FetchErrorMessage()),
		loader.WithRecorder(recorder),
	)
	logger.Info("age lookup configured", "agify_base_url", cfg.AgifyBaseURL, "agify_timeout", cfg.AgifyTimeout)

	srv := server.New(cfg, logger)
	srv.RegisterRoutes(routes)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	recorder.Wait()

	logger.Info("server exited")
}
