package model

// SourceGeneric is a row of the raw generics dataset.
type SourceGeneric struct {
	GenericID   int64   `json:"generic_id"`
	GenericName string  `json:"generic_name"`
	DrugClass   *string `json:"drug_class,omitempty"`
}

// SourceMedicine is a row of the raw medicines dataset. GenericName is the
// medicine table's own copy of the generic name and may be absent.
type SourceMedicine struct {
	GenericID        int64   `json:"generic_id"`
	BrandName        string  `json:"brand_name"`
	GenericName      *string `json:"generic_name,omitempty"`
	DosageForm       *string `json:"dosage_form,omitempty"`
	Strength         *string `json:"strength,omitempty"`
	Manufacturer     *string `json:"manufacturer,omitempty"`
	PackageContainer *string `json:"package_container,omitempty"`
	IsSensitive      bool    `json:"isSensitive"`
}
