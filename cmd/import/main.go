package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pharmazen/internal/config"
	"pharmazen/internal/database"
	"pharmazen/internal/repository"
	"pharmazen/internal/search"
	"pharmazen/internal/service"
	"pharmazen/internal/source"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	createSchema := flag.Bool("create-schema", true, "create the catalog tables if they do not exist")
	reindex := flag.Bool("reindex", false, "rebuild the search index after importing (requires SEARCH_ENABLED)")
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded")
	}
	logger.Info().
		Str("source", cfg.Source.Kind).
		Int("batch_size", cfg.Import.BatchSize).
		Msg("starting catalog import")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if *createSchema {
		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}
	}

	reader, err := source.New(ctx, cfg.Source, cfg.S3, logger)
	if err != nil {
		return fmt.Errorf("failed to open import source: %w", err)
	}
	defer reader.Close()

	categoryRepo := repository.NewCategoryRepository(pool, logger)
	medicineRepo := repository.NewMedicineRepository(pool, logger)

	importService := service.NewImportService(reader, categoryRepo, medicineRepo, cfg.Import.BatchSize, logger)

	summary, err := importService.Import(ctx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if *reindex {
		if !cfg.Search.Enabled {
			return fmt.Errorf("reindex requested but search is disabled")
		}
		indexer := search.NewMeiliIndexer(cfg.Search.URL, cfg.Search.APIKey, cfg.Search.Index, logger)
		indexed, err := service.NewIndexService(medicineRepo, indexer, logger).Rebuild(ctx)
		if err != nil {
			return fmt.Errorf("reindex failed: %w", err)
		}
		logger.Info().Int("documents", indexed).Msg("search index rebuilt")
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
