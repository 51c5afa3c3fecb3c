//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"

	"pharmazen/internal/model"
	"pharmazen/internal/source"
)

func ptr(s string) *string { return &s }

// Writes a small generics/medicines snapshot pair for local runs with
// SOURCE_KIND=snapshot.
//
// Generic 4 has no drug class and generic 99 does not exist; both of their
// medicines land in "Uncategorized".
func main() {
	dataDir := "data/snapshots"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	generics := []model.SourceGeneric{
		{GenericID: 1, GenericName: "Paracetamol", DrugClass: ptr("Analgesics")},
		{GenericID: 2, GenericName: "Ibuprofen", DrugClass: ptr("Analgesics")},
		{GenericID: 3, GenericName: "Amoxicillin", DrugClass: ptr("Antibiotics")},
		{GenericID: 4, GenericName: "Cetirizine"},
	}

	medicines := []model.SourceMedicine{
		{GenericID: 1, BrandName: "Dolo 650", DosageForm: ptr("Tablet"), Strength: ptr("650mg"), Manufacturer: ptr("Micro Labs"), PackageContainer: ptr("15 tablets: ৳ 30.91")},
		{GenericID: 1, BrandName: "Calpol", DosageForm: ptr("Syrup"), Strength: ptr("120mg/5ml"), Manufacturer: ptr("GSK"), PackageContainer: ptr("60 ml bottle: ৳ 45.00")},
		{GenericID: 2, BrandName: "Brufen", DosageForm: ptr("Tablet"), Strength: ptr("400mg"), Manufacturer: ptr("Abbott"), PackageContainer: ptr("10's pack: ৳ 18.50")},
		{GenericID: 3, BrandName: "Mox 500", GenericName: ptr("Amoxicillin Trihydrate"), DosageForm: ptr("Capsule"), Strength: ptr("500mg"), Manufacturer: ptr("Sun Pharma"), PackageContainer: ptr("10 capsules: ৳ 72.40"), IsSensitive: true},
		{GenericID: 4, BrandName: "Okacet", DosageForm: ptr("Tablet"), Strength: ptr("10mg"), Manufacturer: ptr("Cipla")},
		{GenericID: 99, BrandName: "Orphan", DosageForm: ptr("Tablet")},
	}

	if err := source.WriteSnapshot(dataDir, generics, medicines); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	fmt.Printf("Created %s/%s with %d generics\n", dataDir, source.GenericsSnapshot, len(generics))
	fmt.Printf("Created %s/%s with %d medicines\n", dataDir, source.MedicinesSnapshot, len(medicines))
}
