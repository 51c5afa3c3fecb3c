package service

import (
	"context"

	"pharmazen/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultStockQuantity is the stock assigned to every imported medicine.
const DefaultStockQuantity = 100

// DefaultMaxPrice is reported by MaxPrice when the catalog is empty.
var DefaultMaxPrice = decimal.NewFromInt(10000)

// Listing pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// ImportService defines the catalog import pipeline.
type ImportService interface {
	// Import reads the source dataset and loads it into the catalog store.
	// Re-running it against an already imported dataset inserts nothing new.
	Import(ctx context.Context) (*model.ImportSummary, error)
}

// MedicineService defines the medicine query operations.
type MedicineService interface {
	// List returns one page of medicines matching the query.
	List(ctx context.Context, q model.MedicineQuery) (*model.MedicinePage, error)

	// MaxPrice returns the highest medicine price, or DefaultMaxPrice when
	// there are no medicines.
	MaxPrice(ctx context.Context) (decimal.Decimal, error)

	// FilterOptions returns the distinct generic names and companies found in
	// medicine descriptions.
	FilterOptions(ctx context.Context) (*model.FilterOptions, error)
}

// CategoryService defines the category operations.
type CategoryService interface {
	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]model.Category, error)
}

// IndexService defines search index maintenance.
type IndexService interface {
	// Rebuild pushes every medicine to the search index and returns the
	// number of documents sent.
	Rebuild(ctx context.Context) (int, error)
}
