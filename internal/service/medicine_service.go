package service

import (
	"context"
	"fmt"

	"pharmazen/internal/catalog"
	"pharmazen/internal/filter"
	"pharmazen/internal/model"
	"pharmazen/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// medicineService implements MedicineService.
type medicineService struct {
	medicineRepo repository.MedicineRepository
	logger       zerolog.Logger
}

// NewMedicineService creates a new medicine service.
func NewMedicineService(medicineRepo repository.MedicineRepository, logger zerolog.Logger) MedicineService {
	return &medicineService{
		medicineRepo: medicineRepo,
		logger:       logger.With().Str("service", "medicine").Logger(),
	}
}

// List retrieves one page of medicines. Page defaults to 1 and limit to 20.
// Filtered listings are sorted by name, unfiltered ones by
// newest first. The page and the total are fetched concurrently and may
// disagree under concurrent inserts.
func (s *medicineService) List(ctx context.Context, q model.MedicineQuery) (*model.MedicinePage, error) {
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	spec := filter.FromQuery(q)
	order := filter.OrderFor(spec)
	offset := (page - 1) * limit

	var (
		medicines []model.Medicine
		total     int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		medicines, err = s.medicineRepo.Find(gctx, spec, order, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.medicineRepo.Count(gctx, spec)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).
			Int("page", page).
			Int("limit", limit).
			Int("filters", len(spec.Predicates())).
			Msg("failed to list medicines")
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}

	if medicines == nil {
		medicines = []model.Medicine{}
	}

	s.logger.Debug().
		Int("count", len(medicines)).
		Int("total", total).
		Int("page", page).
		Stringer("order", order).
		Msg("listed medicines")

	return &model.MedicinePage{
		Medicines:  medicines,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

// MaxPrice returns the highest price, or DefaultMaxPrice on an empty catalog.
func (s *medicineService) MaxPrice(ctx context.Context) (decimal.Decimal, error) {
	maxPrice, err := s.medicineRepo.MaxPrice(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get max price")
		return decimal.Zero, fmt.Errorf("failed to get max price: %w", err)
	}

	if !maxPrice.Valid {
		return DefaultMaxPrice, nil
	}
	return maxPrice.Decimal, nil
}

// FilterOptions derives facet values from every medicine description.
func (s *medicineService) FilterOptions(ctx context.Context) (*model.FilterOptions, error) {
	descriptions, err := s.medicineRepo.ListDescriptions(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list descriptions")
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}

	options := catalog.ExtractFacets(descriptions)

	s.logger.Debug().
		Int("descriptions", len(descriptions)).
		Int("generic_names", len(options.GenericNames)).
		Int("companies", len(options.Companies)).
		Msg("extracted filter options")

	return options, nil
}

func totalPages(total, limit int) int {
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
