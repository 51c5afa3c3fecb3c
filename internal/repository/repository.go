package repository

import (
	"context"

	"pharmazen/internal/filter"
	"pharmazen/internal/model"

	"github.com/shopspring/decimal"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// CreateMany inserts the given names, silently skipping names that already exist.
	// Returns the number of categories actually created.
	CreateMany(ctx context.Context, names []string) (int, error)

	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]model.Category, error)
}

// MedicineRepository defines the interface for medicine data access operations.
type MedicineRepository interface {
	// CreateMany inserts the given medicines in one transaction, silently skipping
	// rows that violate the (name, description) uniqueness constraint.
	// Returns the number of medicines actually created.
	CreateMany(ctx context.Context, medicines []model.NewMedicine) (int, error)

	// Find retrieves medicines matching spec with their category, sorted by order.
	// A limit of zero or less returns every match from offset onwards.
	Find(ctx context.Context, spec filter.Spec, order filter.Order, offset, limit int) ([]model.Medicine, error)

	// Count returns the number of medicines matching spec.
	Count(ctx context.Context, spec filter.Spec) (int, error)

	// MaxPrice returns the highest medicine price. The result is invalid when
	// there are no medicines.
	MaxPrice(ctx context.Context) (decimal.NullDecimal, error)

	// ListDescriptions returns the description of every medicine.
	ListDescriptions(ctx context.Context) ([]*string, error)
}
