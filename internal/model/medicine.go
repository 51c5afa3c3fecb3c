package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups medicines by drug class.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// Medicine represents a catalog item derived from a raw medicine record.
type Medicine struct {
	ID                   uuid.UUID       `json:"id" db:"id"`
	Name                 string          `json:"name" db:"name"`
	Description          string          `json:"description" db:"description"`
	CategoryID           uuid.UUID       `json:"categoryId" db:"category_id"`
	Price                decimal.Decimal `json:"price" db:"price"`
	StockQuantity        int             `json:"stockQuantity" db:"stock_quantity"`
	RequiresPrescription bool            `json:"requiresPrescription" db:"requires_prescription"`
	ExpiryDate           *time.Time      `json:"expiryDate" db:"expiry_date"`
	CreatedAt            time.Time       `json:"createdAt" db:"created_at"`
	Category             *Category       `json:"category,omitempty" db:"-"`
}

// NewMedicine is the insert form of a Medicine; the store assigns ID and CreatedAt.
type NewMedicine struct {
	Name                 string
	Description          string
	CategoryID           uuid.UUID
	Price                decimal.Decimal
	StockQuantity        int
	RequiresPrescription bool
	ExpiryDate           *time.Time
}

// ImportSummary reports the outcome of one import run.
type ImportSummary struct {
	Categories   int `json:"categories"`
	Inserted     int `json:"inserted"`
	Skipped      int `json:"skipped"`
	Deduplicated int `json:"deduplicated"`
	Total        int `json:"total"`
}
