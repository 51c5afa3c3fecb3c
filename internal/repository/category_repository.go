package repository

import (
	"context"
	"fmt"

	"pharmazen/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// CreateMany inserts the given names, skipping names that already exist.
func (r *categoryRepository) CreateMany(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(query, name)
	}

	// A batch sent outside an explicit transaction runs as one implicit transaction.
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	created := 0
	for i := 0; i < len(names); i++ {
		tag, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("category", names[i]).
				Msg("failed to create category")
			return 0, fmt.Errorf("failed to create category %q: %w", names[i], err)
		}
		created += int(tag.RowsAffected())
	}

	r.logger.Debug().
		Int("submitted", len(names)).
		Int("created", created).
		Msg("categories created successfully")

	return created, nil
}

// List retrieves all categories ordered by name.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
