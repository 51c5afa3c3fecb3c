package integration

import (
	"context"
	"testing"

	"pharmazen/internal/model"
	"pharmazen/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	ctx := context.Background()

	t.Run("First run loads the dataset", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		importer := NewSnapshotImporter(t, testDB.Pool, 4)

		summary, err := importer.Import(ctx)

		require.NoError(t, err)
		assert.Equal(t, model.ImportSummary{
			Categories:   3,
			Inserted:     6,
			Skipped:      0,
			Deduplicated: 0,
			Total:        6,
		}, *summary)

		categories, err := repository.NewCategoryRepository(testDB.Pool, zerolog.Nop()).List(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Analgesics", "Antibiotics", "Uncategorized"}, names)
	})

	t.Run("Second run is idempotent", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		importer := NewSnapshotImporter(t, testDB.Pool, 4)

		_, err := importer.Import(ctx)
		require.NoError(t, err)

		summary, err := importer.Import(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, summary.Deduplicated)

		var medicines, categories int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM medicines").Scan(&medicines))
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&categories))
		assert.Equal(t, 6, medicines)
		assert.Equal(t, 3, categories)
	})

	t.Run("Derived fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		importer := NewSnapshotImporter(t, testDB.Pool, 500)

		_, err := importer.Import(ctx)
		require.NoError(t, err)

		rows, err := testDB.Pool.Query(ctx, `
			SELECT m.name, m.description, m.price::text, m.stock_quantity, m.requires_prescription, c.name
			FROM medicines m JOIN categories c ON c.id = m.category_id
			ORDER BY m.name
		`)
		require.NoError(t, err)
		defer rows.Close()

		type row struct {
			name, description, price string
			stock                    int
			prescription             bool
			category                 string
		}
		var got []row
		for rows.Next() {
			var r row
			require.NoError(t, rows.Scan(&r.name, &r.description, &r.price, &r.stock, &r.prescription, &r.category))
			got = append(got, r)
		}
		require.NoError(t, rows.Err())

		assert.Equal(t, []row{
			{"Brufen", "Ibuprofen | Tablet | 400mg | Abbott", "18.50", 100, false, "Analgesics"},
			{"Calpol", "Paracetamol | Syrup | 120mg/5ml | GSK", "45.00", 100, false, "Analgesics"},
			{"Dolo 650", "Paracetamol | Tablet | 650mg | Micro Labs", "30.91", 100, false, "Analgesics"},
			{"Mox 500", "Amoxicillin Trihydrate | Capsule | 500mg | Sun Pharma", "72.40", 100, true, "Antibiotics"},
			{"Okacet", "Cetirizine | Tablet | 10mg | Cipla", "0.00", 100, false, "Uncategorized"},
			{"Orphan", "Unknown | Tablet", "0.00", 100, false, "Uncategorized"},
		}, got)
	})
}
