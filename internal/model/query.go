package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicineQuery holds the caller-supplied listing parameters. Nil pointers and
// empty strings mean the filter was not given.
type MedicineQuery struct {
	Page        int
	Limit       int
	Search      string
	GenericName string
	Company     string
	CategoryID  *uuid.UUID
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
}

// MedicinePage is one page of a medicine listing.
type MedicinePage struct {
	Medicines  []Medicine `json:"medicines"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}

// FilterOptions lists the distinct facet values derived from descriptions.
type FilterOptions struct {
	GenericNames []string `json:"genericNames"`
	Companies    []string `json:"companies"`
}
