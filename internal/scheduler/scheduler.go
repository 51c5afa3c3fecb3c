// Package scheduler re-runs the catalog import, followed by a search reindex,
// at fixed times of day.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"pharmazen/internal/service"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// Scheduler runs the import pipeline on a daily schedule.
type Scheduler struct {
	importService service.ImportService
	indexService  service.IndexService
	schedule      string
	scheduler     *gocron.Scheduler
	running       atomic.Bool
	logger        zerolog.Logger
}

// New creates a scheduler. schedule is a semicolon separated list of HH:MM
// times. indexService may be nil when search is disabled.
func New(importService service.ImportService, indexService service.IndexService, schedule string, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		importService: importService,
		indexService:  indexService,
		schedule:      schedule,
		scheduler:     gocron.NewScheduler(time.Local),
		logger:        logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the daily job and starts the scheduler in the background.
// Jobs run with ctx; cancel it to abort an in-flight run.
func (s *Scheduler) Start(ctx context.Context) error {
	s.scheduler.SingletonModeAll()

	_, err := s.scheduler.Every(1).Days().At(s.schedule).Do(func() {
		if err := s.RunOnce(ctx); err != nil {
			s.logger.Error().Err(err).Msg("scheduled import failed")
		}
	})
	if err != nil {
		s.logger.Error().Err(err).Str("schedule", s.schedule).Msg("failed to schedule import")
		return fmt.Errorf("failed to schedule import at %q: %w", s.schedule, err)
	}

	s.scheduler.StartAsync()

	s.logger.Info().Str("schedule", s.schedule).Msg("import scheduler started")

	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunOnce imports the source dataset and then rebuilds the search index.
// A call made while another run is in progress returns immediately.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Info().Msg("import already in progress, skipping")
		return nil
	}
	defer s.running.Store(false)

	start := time.Now()

	summary, err := s.importService.Import(ctx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	event := s.logger.Info().
		Int("inserted", summary.Inserted).
		Int("skipped", summary.Skipped).
		Int("deduplicated", summary.Deduplicated)

	if s.indexService != nil {
		indexed, err := s.indexService.Rebuild(ctx)
		if err != nil {
			return fmt.Errorf("reindex failed: %w", err)
		}
		event = event.Int("indexed", indexed)
	}

	event.Dur("duration", time.Since(start)).Msg("scheduled import completed")

	return nil
}
