package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema creates the catalog tables when they do not exist yet. It never alters
// existing tables.
const Schema = `
	CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		CONSTRAINT categories_name_key UNIQUE (name)
	);

	CREATE TABLE IF NOT EXISTS medicines (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT,
		category_id UUID NOT NULL REFERENCES categories(id),
		price NUMERIC(12, 2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		stock_quantity INTEGER NOT NULL DEFAULT 0,
		requires_prescription BOOLEAN NOT NULL DEFAULT FALSE,
		expiry_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		CONSTRAINT medicines_name_description_key UNIQUE (name, description)
	);

	CREATE INDEX IF NOT EXISTS idx_medicines_category_id ON medicines(category_id);
	CREATE INDEX IF NOT EXISTS idx_medicines_created_at ON medicines(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_medicines_name ON medicines(name);
	CREATE INDEX IF NOT EXISTS idx_medicines_price ON medicines(price);
`

// EnsureSchema applies Schema.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Msg("failed to create catalog schema")
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}

	logger.Info().Msg("catalog schema ready")
	return nil
}
