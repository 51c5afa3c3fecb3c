package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"pharmazen/internal/model"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// sqliteReader implements Reader over the original medicines.db file.
type sqliteReader struct {
	db     *sql.DB
	path   string
	logger zerolog.Logger
}

// NewSQLiteReader opens the SQLite dataset at path in read-only mode.
func NewSQLiteReader(ctx context.Context, path string, logger zerolog.Logger) (Reader, error) {
	logger = logger.With().Str("component", "sqlite-source").Logger()

	if _, err := os.Stat(path); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("source database not found")
		return nil, fmt.Errorf("failed to open source database %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open source database %s: %w", path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		logger.Error().Err(err).Str("file", path).Msg("failed to connect to source database")
		return nil, fmt.Errorf("failed to connect to source database %s: %w", path, err)
	}

	logger.Info().Str("file", path).Msg("source database opened")

	return &sqliteReader{
		db:     db,
		path:   path,
		logger: logger,
	}, nil
}

// ListGenerics reads the generics table.
func (r *sqliteReader) ListGenerics(ctx context.Context) ([]model.SourceGeneric, error) {
	query := `SELECT generic_id, generic_name, drug_class FROM generics`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query generics")
		return nil, fmt.Errorf("failed to query generics: %w", err)
	}
	defer rows.Close()

	generics := []model.SourceGeneric{}
	for rows.Next() {
		var (
			g         model.SourceGeneric
			name      sql.NullString
			drugClass sql.NullString
		)
		if err := rows.Scan(&g.GenericID, &name, &drugClass); err != nil {
			return nil, fmt.Errorf("failed to scan generic: %w", err)
		}
		g.GenericName = name.String
		g.DrugClass = nullableString(drugClass)
		generics = append(generics, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generics: %w", err)
	}

	r.logger.Debug().Int("count", len(generics)).Msg("generics read")

	return generics, nil
}

// ListMedicines reads the medicines table.
func (r *sqliteReader) ListMedicines(ctx context.Context) ([]model.SourceMedicine, error) {
	query := `
		SELECT generic_id, brand_name, generic_name, dosage_form, strength,
		       manufacturer, package_container, isSensitive
		FROM medicines
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query medicines")
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	medicines := []model.SourceMedicine{}
	for rows.Next() {
		var (
			genericID                              sql.NullInt64
			brandName, genericName, dosageForm     sql.NullString
			strength, manufacturer, packageContent sql.NullString
			sensitive                              sql.NullInt64
		)
		err := rows.Scan(
			&genericID,
			&brandName,
			&genericName,
			&dosageForm,
			&strength,
			&manufacturer,
			&packageContent,
			&sensitive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medicine: %w", err)
		}

		medicines = append(medicines, model.SourceMedicine{
			GenericID:        genericID.Int64,
			BrandName:        brandName.String,
			GenericName:      nullableString(genericName),
			DosageForm:       nullableString(dosageForm),
			Strength:         nullableString(strength),
			Manufacturer:     nullableString(manufacturer),
			PackageContainer: nullableString(packageContent),
			IsSensitive:      sensitive.Valid && sensitive.Int64 == 1,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating medicines: %w", err)
	}

	r.logger.Debug().Int("count", len(medicines)).Msg("medicines read")

	return medicines, nil
}

// Close closes the underlying database handle.
func (r *sqliteReader) Close() error {
	return r.db.Close()
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
