package service

import (
	"context"
	"time"

	"pharmazen/internal/catalog"
	"pharmazen/internal/metrics"
	"pharmazen/internal/model"
	"pharmazen/internal/repository"
	"pharmazen/internal/source"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBatchSize is the number of source records per insert batch.
const DefaultBatchSize = 500

// importService implements ImportService.
type importService struct {
	reader       source.Reader
	categoryRepo repository.CategoryRepository
	medicineRepo repository.MedicineRepository
	batchSize    int
	logger       zerolog.Logger
}

// NewImportService creates a new import service. A non-positive batchSize
// falls back to DefaultBatchSize.
func NewImportService(
	reader source.Reader,
	categoryRepo repository.CategoryRepository,
	medicineRepo repository.MedicineRepository,
	batchSize int,
	logger zerolog.Logger,
) ImportService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &importService{
		reader:       reader,
		categoryRepo: categoryRepo,
		medicineRepo: medicineRepo,
		batchSize:    batchSize,
		logger:       logger.With().Str("service", "import").Logger(),
	}
}

// Import runs the pipeline: read, normalize categories, persist them,
// resolve category ids from a fresh read, then insert medicines in
// sequential batches. Batches committed before a store failure stay.
func (s *importService) Import(ctx context.Context) (*model.ImportSummary, error) {
	start := time.Now()

	summary, err := s.run(ctx)

	metrics.ImportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ImportRunsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, err
	}
	metrics.ImportRunsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	s.logger.Info().
		Int("categories", summary.Categories).
		Int("inserted", summary.Inserted).
		Int("skipped", summary.Skipped).
		Int("deduplicated", summary.Deduplicated).
		Int("total", summary.Total).
		Dur("duration", time.Since(start)).
		Msg("import completed")

	return summary, nil
}

func (s *importService) run(ctx context.Context) (*model.ImportSummary, error) {
	generics, err := s.reader.ListGenerics(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read generics")
		return nil, model.ErrSourceUnavailable.Wrap(err)
	}

	medicines, err := s.reader.ListMedicines(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read medicines")
		return nil, model.ErrSourceUnavailable.Wrap(err)
	}

	s.logger.Info().
		Int("generics", len(generics)).
		Int("medicines", len(medicines)).
		Msg("source dataset read")

	names, genericToCategory := catalog.NormalizeCategories(generics)

	created, err := s.categoryRepo.CreateMany(ctx, names)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create categories")
		return nil, model.ErrStoreUnavailable.Wrap(err)
	}

	// Ids are read back rather than derived from the insert, since existing
	// categories were skipped.
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, model.ErrStoreUnavailable.Wrap(err)
	}

	categoryIDs := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		categoryIDs[c.Name] = c.ID
	}

	s.logger.Info().
		Int("categories", len(names)).
		Int("created", created).
		Msg("categories ready")

	genericNames := make(map[int64]string, len(generics))
	for _, g := range generics {
		genericNames[g.GenericID] = g.GenericName
	}

	summary := &model.ImportSummary{
		Categories: len(names),
		Total:      len(medicines),
	}

	for offset := 0; offset < len(medicines); offset += s.batchSize {
		end := min(offset+s.batchSize, len(medicines))

		batch := make([]model.NewMedicine, 0, end-offset)
		for _, m := range medicines[offset:end] {
			categoryID, ok := resolveCategory(m.GenericID, genericToCategory, categoryIDs)
			if !ok {
				summary.Skipped++
				s.logger.Warn().
					Err(model.ErrUnresolvableCategory).
					Int64("generic_id", m.GenericID).
					Str("brand_name", m.BrandName).
					Msg("medicine skipped")
				continue
			}
			batch = append(batch, newMedicine(m, categoryID, genericNames))
		}

		if len(batch) == 0 {
			continue
		}

		stored, err := s.medicineRepo.CreateMany(ctx, batch)
		if err != nil {
			s.logger.Error().
				Err(err).
				Int("offset", offset).
				Int("inserted", summary.Inserted).
				Msg("failed to insert medicine batch")
			return nil, model.ErrStoreUnavailable.Wrap(err)
		}

		summary.Inserted += len(batch)
		summary.Deduplicated += len(batch) - stored

		metrics.ImportRecordsTotal.WithLabelValues(metrics.OutcomeInserted).Add(float64(len(batch)))
		metrics.ImportRecordsTotal.WithLabelValues(metrics.OutcomeDeduplicated).Add(float64(len(batch) - stored))

		s.logger.Info().
			Int("inserted", summary.Inserted).
			Int("total", len(medicines)).
			Msg("import progress")
	}

	metrics.ImportRecordsTotal.WithLabelValues(metrics.OutcomeSkipped).Add(float64(summary.Skipped))

	return summary, nil
}

// resolveCategory maps a generic id to its category id, falling back to the
// Uncategorized category.
func resolveCategory(genericID int64, genericToCategory map[int64]string, categoryIDs map[string]uuid.UUID) (uuid.UUID, bool) {
	if name, ok := genericToCategory[genericID]; ok {
		if id, ok := categoryIDs[name]; ok {
			return id, true
		}
	}
	id, ok := categoryIDs[catalog.UncategorizedName]
	return id, ok
}

func newMedicine(m model.SourceMedicine, categoryID uuid.UUID, genericNames map[int64]string) model.NewMedicine {
	genericName := ""
	if m.GenericName != nil && *m.GenericName != "" {
		genericName = *m.GenericName
	} else {
		genericName = genericNames[m.GenericID]
	}

	return model.NewMedicine{
		Name:                 m.BrandName,
		Description:          catalog.BuildDescription(genericName, m),
		CategoryID:           categoryID,
		Price:                catalog.ExtractPrice(m.PackageContainer),
		StockQuantity:        DefaultStockQuantity,
		RequiresPrescription: m.IsSensitive,
	}
}
