package service

import (
	"context"
	"fmt"

	"pharmazen/internal/filter"
	"pharmazen/internal/metrics"
	"pharmazen/internal/repository"
	"pharmazen/internal/search"

	"github.com/rs/zerolog"
)

// indexPageSize is the number of medicines read and pushed per round trip.
const indexPageSize = 500

// indexService implements IndexService.
type indexService struct {
	medicineRepo repository.MedicineRepository
	indexer      search.Indexer
	logger       zerolog.Logger
}

// NewIndexService creates a new search index service.
func NewIndexService(medicineRepo repository.MedicineRepository, indexer search.Indexer, logger zerolog.Logger) IndexService {
	return &indexService{
		medicineRepo: medicineRepo,
		indexer:      indexer,
		logger:       logger.With().Str("service", "index").Logger(),
	}
}

// Rebuild pages through the whole catalog, newest first, and pushes each page
// to the index.
func (s *indexService) Rebuild(ctx context.Context) (int, error) {
	if err := s.indexer.EnsureIndex(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to prepare search index")
		return 0, fmt.Errorf("failed to prepare search index: %w", err)
	}

	all := filter.And()
	indexed := 0

	for offset := 0; ; offset += indexPageSize {
		medicines, err := s.medicineRepo.Find(ctx, all, filter.OrderNewestFirst, offset, indexPageSize)
		if err != nil {
			s.logger.Error().Err(err).Int("offset", offset).Msg("failed to read medicines for indexing")
			return indexed, fmt.Errorf("failed to read medicines for indexing: %w", err)
		}
		if len(medicines) == 0 {
			break
		}

		docs := make([]search.Document, 0, len(medicines))
		for _, m := range medicines {
			docs = append(docs, search.NewDocument(m))
		}

		if err := s.indexer.Index(ctx, docs); err != nil {
			s.logger.Error().Err(err).Int("offset", offset).Msg("failed to index medicines")
			return indexed, fmt.Errorf("failed to index medicines: %w", err)
		}

		indexed += len(docs)
		metrics.SearchDocumentsIndexed.Add(float64(len(docs)))

		if len(medicines) < indexPageSize {
			break
		}
	}

	s.logger.Info().Int("documents", indexed).Msg("search index rebuilt")

	return indexed, nil
}
