package catalog

import (
	"strings"

	"pharmazen/internal/model"
)

const (
	// DescriptionSeparator joins the packed description segments.
	DescriptionSeparator = " | "

	// UnknownGenericName stands in for a missing generic name.
	UnknownGenericName = "Unknown"
)

// BuildDescription packs the generic name, dosage form, strength and
// manufacturer into one description. Absent or empty segments are omitted, so
// the position of the manufacturer is only 3 when every segment is present.
func BuildDescription(genericName string, m model.SourceMedicine) string {
	if genericName == "" {
		genericName = UnknownGenericName
	}

	parts := make([]string, 0, 4)
	parts = append(parts, genericName)
	for _, segment := range []*string{m.DosageForm, m.Strength, m.Manufacturer} {
		if segment != nil && *segment != "" {
			parts = append(parts, *segment)
		}
	}

	return strings.Join(parts, DescriptionSeparator)
}
