package service

import (
	"context"

	"pharmazen/internal/filter"
	"pharmazen/internal/model"
	"pharmazen/internal/search"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockReader is a mock implementation of source.Reader.
type MockReader struct {
	mock.Mock
}

func (m *MockReader) ListGenerics(ctx context.Context) ([]model.SourceGeneric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SourceGeneric), args.Error(1)
}

func (m *MockReader) ListMedicines(ctx context.Context) ([]model.SourceMedicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SourceMedicine), args.Error(1)
}

func (m *MockReader) Close() error {
	return nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateMany(ctx context.Context, names []string) (int, error) {
	args := m.Called(ctx, names)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

// MockMedicineRepository is a mock implementation of MedicineRepository.
type MockMedicineRepository struct {
	mock.Mock
}

func (m *MockMedicineRepository) CreateMany(ctx context.Context, medicines []model.NewMedicine) (int, error) {
	args := m.Called(ctx, medicines)
	if fn, ok := args.Get(0).(func([]model.NewMedicine) int); ok {
		return fn(medicines), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

func (m *MockMedicineRepository) Find(ctx context.Context, spec filter.Spec, order filter.Order, offset, limit int) ([]model.Medicine, error) {
	args := m.Called(ctx, spec, order, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) Count(ctx context.Context, spec filter.Spec) (int, error) {
	args := m.Called(ctx, spec)
	return args.Int(0), args.Error(1)
}

func (m *MockMedicineRepository) MaxPrice(ctx context.Context) (decimal.NullDecimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockMedicineRepository) ListDescriptions(ctx context.Context) ([]*string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*string), args.Error(1)
}

// MockIndexer is a mock implementation of search.Indexer.
type MockIndexer struct {
	mock.Mock
}

func (m *MockIndexer) EnsureIndex(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockIndexer) Index(ctx context.Context, docs []search.Document) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}
