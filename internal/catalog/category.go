// Package catalog holds the pure transformations between the raw source
// dataset and the normalized catalog: category normalization, price
// extraction, description packing and facet extraction.
package catalog

import (
	"slices"
	"strings"

	"pharmazen/internal/model"
)

// UncategorizedName is the fallback category for generics without a drug class.
const UncategorizedName = "Uncategorized"

// CategoryName returns the trimmed drug class, or UncategorizedName when it is
// absent or blank.
func CategoryName(drugClass *string) string {
	if drugClass == nil {
		return UncategorizedName
	}
	if name := strings.TrimSpace(*drugClass); name != "" {
		return name
	}
	return UncategorizedName
}

// NormalizeCategories derives the distinct category names from the generics
// and the generic-id to category-name lookup. UncategorizedName is always part
// of the returned names. Names are returned sorted.
func NormalizeCategories(generics []model.SourceGeneric) ([]string, map[int64]string) {
	seen := map[string]struct{}{UncategorizedName: {}}
	lookup := make(map[int64]string, len(generics))

	for _, g := range generics {
		name := CategoryName(g.DrugClass)
		seen[name] = struct{}{}
		lookup[g.GenericID] = name
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, lookup
}
