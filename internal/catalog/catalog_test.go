package catalog

import (
	"testing"

	"pharmazen/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCategoryName(t *testing.T) {
	tests := []struct {
		name      string
		drugClass *string
		expected  string
	}{
		{name: "Absent drug class", drugClass: nil, expected: UncategorizedName},
		{name: "Empty drug class", drugClass: strPtr(""), expected: UncategorizedName},
		{name: "Whitespace only", drugClass: strPtr(" \t\n "), expected: UncategorizedName},
		{name: "Trimmed value", drugClass: strPtr("  Antibiotic  "), expected: "Antibiotic"},
		{name: "Case preserved", drugClass: strPtr("antibiotic"), expected: "antibiotic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryName(tt.drugClass))
		})
	}
}

func TestNormalizeCategories(t *testing.T) {
	generics := []model.SourceGeneric{
		{GenericID: 1, GenericName: "Paracetamol", DrugClass: strPtr("Analgesic")},
		{GenericID: 2, GenericName: "Ibuprofen", DrugClass: strPtr(" Analgesic ")},
		{GenericID: 3, GenericName: "Amoxicillin", DrugClass: strPtr("Antibiotic")},
		{GenericID: 4, GenericName: "Mystery", DrugClass: nil},
		{GenericID: 5, GenericName: "Other", DrugClass: strPtr("analgesic")},
	}

	names, lookup := NormalizeCategories(generics)

	assert.Equal(t, []string{"Analgesic", "Antibiotic", "Uncategorized", "analgesic"}, names)
	assert.Equal(t, map[int64]string{
		1: "Analgesic",
		2: "Analgesic",
		3: "Antibiotic",
		4: UncategorizedName,
		5: "analgesic",
	}, lookup)
}

func TestNormalizeCategories_AlwaysIncludesUncategorized(t *testing.T) {
	names, lookup := NormalizeCategories([]model.SourceGeneric{
		{GenericID: 1, DrugClass: strPtr("Antacid")},
	})

	assert.Contains(t, names, UncategorizedName)
	assert.Len(t, names, 2)
	assert.Len(t, lookup, 1)

	names, lookup = NormalizeCategories(nil)
	assert.Equal(t, []string{UncategorizedName}, names)
	assert.Empty(t, lookup)
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name      string
		container *string
		expected  string
	}{
		{name: "Absent container", container: nil, expected: "0"},
		{name: "Empty container", container: strPtr(""), expected: "0"},
		{name: "Glyph with space", container: strPtr("৳ 12.50"), expected: "12.50"},
		{name: "Glyph without space", container: strPtr("৳5.5"), expected: "5.5"},
		{name: "Embedded in text", container: strPtr("10's pack: ৳ 120.00 per strip"), expected: "120.00"},
		{name: "Integer amount", container: strPtr("Unit Price: ৳ 8"), expected: "8"},
		{name: "Only first match used", container: strPtr("৳ 3.00 (strip ৳ 30.00)"), expected: "3.00"},
		{name: "Second decimal point ignored", container: strPtr("৳ 12.50.3"), expected: "12.50"},
		{name: "Leading decimal point", container: strPtr("৳ .75"), expected: "0.75"},
		{name: "No currency glyph", container: strPtr("100 ml bottle"), expected: "0"},
		{name: "Glyph without number", container: strPtr("৳ n/a"), expected: "0"},
		{name: "Lone decimal point", container: strPtr("৳ ."), expected: "0"},
		{name: "No-break space after glyph", container: strPtr("Unit Price: ৳\u00a012.50"), expected: "12.50"},
		{name: "Narrow no-break space after glyph", container: strPtr("৳\u202f7.25"), expected: "7.25"},
		{name: "Tab after glyph", container: strPtr("৳\t3"), expected: "3"},
		{name: "Dollar sign is not taka", container: strPtr("$ 12.00"), expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPrice(tt.container)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got),
				"expected %s, got %s", tt.expected, got.String())
			assert.False(t, got.IsNegative())
		})
	}
}

func TestBuildDescription(t *testing.T) {
	tests := []struct {
		name        string
		genericName string
		medicine    model.SourceMedicine
		expected    string
	}{
		{
			name:        "All segments present",
			genericName: "Paracetamol",
			medicine: model.SourceMedicine{
				DosageForm:   strPtr("Tablet"),
				Strength:     strPtr("500 mg"),
				Manufacturer: strPtr("Square Pharmaceuticals"),
			},
			expected: "Paracetamol | Tablet | 500 mg | Square Pharmaceuticals",
		},
		{
			name:        "Missing middle segment is omitted",
			genericName: "Paracetamol",
			medicine: model.SourceMedicine{
				DosageForm:   strPtr("Tablet"),
				Manufacturer: strPtr("Beximco"),
			},
			expected: "Paracetamol | Tablet | Beximco",
		},
		{
			name:        "Empty segment is omitted",
			genericName: "Paracetamol",
			medicine: model.SourceMedicine{
				DosageForm: strPtr(""),
				Strength:   strPtr("500 mg"),
			},
			expected: "Paracetamol | 500 mg",
		},
		{
			name:        "Missing generic name becomes Unknown",
			genericName: "",
			medicine:    model.SourceMedicine{Strength: strPtr("10 mg")},
			expected:    "Unknown | 10 mg",
		},
		{
			name:        "Only generic name",
			genericName: "Zinc",
			medicine:    model.SourceMedicine{},
			expected:    "Zinc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildDescription(tt.genericName, tt.medicine)
			assert.Equal(t, tt.expected, got)
			assert.NotContains(t, got, "|  |")
		})
	}
}

func TestExtractFacets(t *testing.T) {
	descriptions := []*string{
		strPtr("B | f1 | f2 | CompanyY"),
		strPtr("A | f1 | f2 | CompanyX"),
		strPtr("A|f3|f4|CompanyX"),
	}

	options := ExtractFacets(descriptions)

	require.NotNil(t, options)
	assert.Equal(t, []string{"A", "B"}, options.GenericNames)
	assert.Equal(t, []string{"CompanyX", "CompanyY"}, options.Companies)
}

func TestExtractFacets_ShortAndEmptyDescriptions(t *testing.T) {
	descriptions := []*string{
		nil,
		strPtr(""),
		strPtr("Omeprazole | Capsule"),
		strPtr("Zinc | Tablet | 20 mg"),
		strPtr(" | Syrup | 5 ml | Acme"),
		strPtr("Cetirizine | Tablet | 10 mg |  "),
	}

	options := ExtractFacets(descriptions)

	assert.Equal(t, []string{"Cetirizine", "Omeprazole", "Zinc"}, options.GenericNames)
	assert.Equal(t, []string{"Acme"}, options.Companies)
}

func TestExtractFacets_Empty(t *testing.T) {
	options := ExtractFacets(nil)

	assert.NotNil(t, options.GenericNames)
	assert.NotNil(t, options.Companies)
	assert.Empty(t, options.GenericNames)
	assert.Empty(t, options.Companies)
}

func TestDescriptionRoundTripsThroughFacets(t *testing.T) {
	medicine := model.SourceMedicine{
		DosageForm:   strPtr("Tablet"),
		Strength:     strPtr("500 mg"),
		Manufacturer: strPtr("Incepta"),
	}
	description := BuildDescription("Paracetamol", medicine)

	options := ExtractFacets([]*string{&description})

	assert.Equal(t, []string{"Paracetamol"}, options.GenericNames)
	assert.Equal(t, []string{"Incepta"}, options.Companies)
}
