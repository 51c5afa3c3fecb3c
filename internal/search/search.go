// Package search pushes catalog medicines to an external full-text index.
// The query engine never reads from it; the index serves storefront
// search-as-you-type clients.
package search

import (
	"context"

	"pharmazen/internal/catalog"
	"pharmazen/internal/model"
)

// Document is the indexed form of a medicine.
type Document struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	GenericName          string  `json:"genericName,omitempty"`
	Company              string  `json:"company,omitempty"`
	CategoryID           string  `json:"categoryId"`
	Category             string  `json:"category,omitempty"`
	Price                float64 `json:"price"`
	RequiresPrescription bool    `json:"requiresPrescription"`
	CreatedAt            int64   `json:"createdAt"`
}

// Indexer defines write access to a search index.
type Indexer interface {
	// EnsureIndex creates and configures the index if needed.
	EnsureIndex(ctx context.Context) error

	// Index adds or replaces the given documents.
	Index(ctx context.Context, docs []Document) error
}

// NewDocument converts a medicine into its indexed form. Generic name and
// company come from the packed description.
func NewDocument(m model.Medicine) Document {
	doc := Document{
		ID:                   m.ID.String(),
		Name:                 m.Name,
		Description:          m.Description,
		CategoryID:           m.CategoryID.String(),
		Price:                m.Price.InexactFloat64(),
		RequiresPrescription: m.RequiresPrescription,
		CreatedAt:            m.CreatedAt.Unix(),
	}
	if m.Category != nil {
		doc.Category = m.Category.Name
	}
	doc.GenericName, doc.Company = catalog.SplitFacets(m.Description)
	return doc
}
