package integration

import (
	"context"
	"testing"
	"time"

	"pharmazen/internal/database"
	"pharmazen/internal/model"
	"pharmazen/internal/repository"
	"pharmazen/internal/service"
	"pharmazen/internal/source"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the catalog schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

func ptr(s string) *string { return &s }

// SampleDataset returns a small source dataset. Generic 4 has no drug class
// and generic 99 is missing, so two medicines end up Uncategorized.
func SampleDataset() ([]model.SourceGeneric, []model.SourceMedicine) {
	generics := []model.SourceGeneric{
		{GenericID: 1, GenericName: "Paracetamol", DrugClass: ptr("Analgesics")},
		{GenericID: 2, GenericName: "Ibuprofen", DrugClass: ptr(" Analgesics ")},
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

	return generics, medicines
}

// NewSnapshotImporter writes the sample dataset as a local snapshot and
// returns an import service reading it.
func NewSnapshotImporter(t *testing.T, pool *pgxpool.Pool, batchSize int) service.ImportService {
	t.Helper()

	dir := t.TempDir()
	generics, medicines := SampleDataset()
	if err := source.WriteSnapshot(dir, generics, medicines); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}

	logger := zerolog.Nop()
	reader := source.NewSnapshotReader(source.NewFileFetcher(dir, logger), logger)
	t.Cleanup(func() { _ = reader.Close() })

	return service.NewImportService(
		reader,
		repository.NewCategoryRepository(pool, logger),
		repository.NewMedicineRepository(pool, logger),
		batchSize,
		logger,
	)
}

// CleanupDB removes all catalog rows.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE medicines, categories"); err != nil {
		t.Logf("failed to clean catalog tables: %v", err)
	}
}
