package catalog

import (
	"slices"
	"strings"

	"pharmazen/internal/model"
)

const (
	genericNameSegment = 0
	companySegment     = 3
)

// ExtractFacets re-parses packed descriptions into the sorted, distinct generic
// names (segment 0) and companies (segment 3). Nil descriptions and missing or
// empty segments contribute nothing.
func ExtractFacets(descriptions []*string) *model.FilterOptions {
	genericNames := make(map[string]struct{})
	companies := make(map[string]struct{})

	for _, description := range descriptions {
		if description == nil {
			continue
		}

		genericName, company := SplitFacets(*description)
		if genericName != "" {
			genericNames[genericName] = struct{}{}
		}
		if company != "" {
			companies[company] = struct{}{}
		}
	}

	return &model.FilterOptions{
		GenericNames: sortedKeys(genericNames),
		Companies:    sortedKeys(companies),
	}
}

// SplitFacets returns the trimmed generic name and company segments of one
// packed description; either is empty when absent.
func SplitFacets(description string) (genericName, company string) {
	if description == "" {
		return "", ""
	}

	parts := strings.Split(description, "|")
	genericName = strings.TrimSpace(parts[genericNameSegment])
	if len(parts) > companySegment {
		company = strings.TrimSpace(parts[companySegment])
	}
	return genericName, company
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
