// Package filter describes medicine listing filters as typed predicates. A Spec
// is a conjunction of predicates; store adapters translate it into their own
// query language exactly once.
package filter

import (
	"strings"

	"pharmazen/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags the variant held by a Predicate.
type Kind int

const (
	KindNameContains Kind = iota + 1
	KindDescriptionContains
	KindCategoryEquals
	KindPriceAtLeast
	KindPriceAtMost
)

func (k Kind) String() string {
	switch k {
	case KindNameContains:
		return "name_contains"
	case KindDescriptionContains:
		return "description_contains"
	case KindCategoryEquals:
		return "category_equals"
	case KindPriceAtLeast:
		return "price_at_least"
	case KindPriceAtMost:
		return "price_at_most"
	default:
		return "unknown"
	}
}

// Predicate is a single filter condition. Only the field matching Kind is set.
type Predicate struct {
	Kind       Kind
	Text       string
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// NameContains matches medicines whose name contains text, ignoring case.
func NameContains(text string) Predicate {
	return Predicate{Kind: KindNameContains, Text: text}
}

// DescriptionContains matches medicines whose description contains text, ignoring case.
func DescriptionContains(text string) Predicate {
	return Predicate{Kind: KindDescriptionContains, Text: text}
}

// CategoryEquals matches medicines of one category.
func CategoryEquals(id uuid.UUID) Predicate {
	return Predicate{Kind: KindCategoryEquals, CategoryID: id}
}

// PriceAtLeast matches medicines priced at or above amount.
func PriceAtLeast(amount decimal.Decimal) Predicate {
	return Predicate{Kind: KindPriceAtLeast, Amount: amount}
}

// PriceAtMost matches medicines priced at or below amount.
func PriceAtMost(amount decimal.Decimal) Predicate {
	return Predicate{Kind: KindPriceAtMost, Amount: amount}
}

// Matches evaluates the predicate against a medicine in memory. It is the
// reference semantics the SQL adapter in internal/repository must reproduce:
// case-insensitive substring for text, equality for category, inclusive
// bounds for price.
func (p Predicate) Matches(m model.Medicine) bool {
	switch p.Kind {
	case KindNameContains:
		return containsFold(m.Name, p.Text)
	case KindDescriptionContains:
		return containsFold(m.Description, p.Text)
	case KindCategoryEquals:
		return m.CategoryID == p.CategoryID
	case KindPriceAtLeast:
		return m.Price.GreaterThanOrEqual(p.Amount)
	case KindPriceAtMost:
		return m.Price.LessThanOrEqual(p.Amount)
	default:
		return false
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Spec is the logical AND of its predicates. The zero value matches everything.
type Spec struct {
	predicates []Predicate
}

// And composes predicates into a Spec.
func And(predicates ...Predicate) Spec {
	return Spec{predicates: append([]Predicate(nil), predicates...)}
}

// Predicates returns the predicates in composition order.
func (s Spec) Predicates() []Predicate {
	return s.predicates
}

// IsEmpty reports whether the spec has no predicates.
func (s Spec) IsEmpty() bool {
	return len(s.predicates) == 0
}

// Matches reports whether every predicate matches m. Repository tests check
// Find and Count against it.
func (s Spec) Matches(m model.Medicine) bool {
	for _, p := range s.predicates {
		if !p.Matches(m) {
			return false
		}
	}
	return true
}

// Order selects the listing order.
type Order int

const (
	// OrderNewestFirst sorts by creation time, most recent first.
	OrderNewestFirst Order = iota
	// OrderNameAsc sorts alphabetically by name.
	OrderNameAsc
)

func (o Order) String() string {
	if o == OrderNameAsc {
		return "name_asc"
	}
	return "newest_first"
}

// OrderFor alphabetizes filtered listings and shows the latest arrivals first
// when nothing is filtered.
func OrderFor(s Spec) Order {
	if s.IsEmpty() {
		return OrderNewestFirst
	}
	return OrderNameAsc
}

// FromQuery translates listing parameters into a Spec. A generic name and a
// company become two independent description predicates.
func FromQuery(q model.MedicineQuery) Spec {
	var predicates []Predicate

	if q.Search != "" {
		predicates = append(predicates, NameContains(q.Search))
	}
	if q.GenericName != "" {
		predicates = append(predicates, DescriptionContains(q.GenericName))
	}
	if q.Company != "" {
		predicates = append(predicates, DescriptionContains(q.Company))
	}
	if q.CategoryID != nil {
		predicates = append(predicates, CategoryEquals(*q.CategoryID))
	}
	if q.MinPrice != nil {
		predicates = append(predicates, PriceAtLeast(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		predicates = append(predicates, PriceAtMost(*q.MaxPrice))
	}

	return And(predicates...)
}
