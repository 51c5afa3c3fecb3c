package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmazen/internal/config"
	"pharmazen/internal/database"
	"pharmazen/internal/handler"
	"pharmazen/internal/middleware"
	"pharmazen/internal/repository"
	"pharmazen/internal/router"
	"pharmazen/internal/scheduler"
	"pharmazen/internal/search"
	"pharmazen/internal/service"
	"pharmazen/internal/source"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const rateLimitSweepInterval = 30 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded")
	}
	logger.Info().Msg("starting PharmaZen API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	if err := database.RegisterPoolMetrics(pool, prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("failed to register database metrics: %w", err)
	}

	categoryRepo := repository.NewCategoryRepository(pool, logger)
	medicineRepo := repository.NewMedicineRepository(pool, logger)

	medicineService := service.NewMedicineService(medicineRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)

	var indexService service.IndexService
	if cfg.Search.Enabled {
		indexer := search.NewMeiliIndexer(cfg.Search.URL, cfg.Search.APIKey, cfg.Search.Index, logger)
		indexService = service.NewIndexService(medicineRepo, indexer, logger)
	} else {
		logger.Info().Msg("search indexing disabled")
	}

	if cfg.Import.ScheduleEnabled {
		reader, err := source.New(ctx, cfg.Source, cfg.S3, logger)
		if err != nil {
			return fmt.Errorf("failed to open import source: %w", err)
		}
		defer reader.Close()

		importService := service.NewImportService(reader, categoryRepo, medicineRepo, cfg.Import.BatchSize, logger)
		importScheduler := scheduler.New(importService, indexService, cfg.Import.Schedule, logger)
		if err := importScheduler.Start(ctx); err != nil {
			return fmt.Errorf("failed to start import scheduler: %w", err)
		}
		defer importScheduler.Stop()
	} else {
		logger.Info().Msg("scheduled import disabled")
	}

	medicineHandler := handler.NewMedicineHandler(medicineService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	healthHandler := handler.NewHealthHandler(pool, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger)
	go limiter.RunCleanup(ctx, rateLimitSweepInterval)

	mux := router.New(medicineHandler, categoryHandler, healthHandler, limiter, cfg.CORS, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
