package repository

import (
	"context"
	"fmt"

	"pharmazen/internal/filter"
	"pharmazen/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// medicineRepository implements the MedicineRepository interface using PostgreSQL.
type medicineRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMedicineRepository creates a new PostgreSQL-backed medicine repository.
func NewMedicineRepository(pool *pgxpool.Pool, logger zerolog.Logger) MedicineRepository {
	return &medicineRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "medicine").Logger(),
	}
}

// CreateMany inserts the given medicines in one transaction, skipping duplicates.
func (r *medicineRepository) CreateMany(ctx context.Context, medicines []model.NewMedicine) (int, error) {
	if len(medicines) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO medicines (
			name, description, category_id, price,
			stock_quantity, requires_prescription, expiry_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name, description) DO NOTHING
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// No-op once committed.
		_ = tx.Rollback(ctx)
	}()

	batch := &pgx.Batch{}
	for _, m := range medicines {
		batch.Queue(query,
			m.Name,
			m.Description,
			m.CategoryID,
			m.Price,
			m.StockQuantity,
			m.RequiresPrescription,
			m.ExpiryDate,
		)
	}

	results := tx.SendBatch(ctx, batch)

	created := 0
	for i := 0; i < len(medicines); i++ {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			r.logger.Error().
				Err(err).
				Str("name", medicines[i].Name).
				Msg("failed to create medicine")
			return 0, fmt.Errorf("failed to create medicine %q: %w", medicines[i].Name, err)
		}
		created += int(tag.RowsAffected())
	}

	if err := results.Close(); err != nil {
		r.logger.Error().Err(err).Msg("failed to close batch results")
		return 0, fmt.Errorf("failed to create medicines: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return 0, fmt.Errorf("failed to commit medicines: %w", err)
	}

	r.logger.Debug().
		Int("submitted", len(medicines)).
		Int("created", created).
		Msg("medicines created successfully")

	return created, nil
}

// Find retrieves medicines matching spec with their category.
func (r *medicineRepository) Find(ctx context.Context, spec filter.Spec, order filter.Order, offset, limit int) ([]model.Medicine, error) {
	where, args := whereClause(spec, nil)

	query := `
		SELECT m.id, m.name, COALESCE(m.description, ''), m.category_id, m.price,
			m.stock_quantity, m.requires_prescription, m.expiry_date, m.created_at,
			c.id, c.name
		FROM medicines m
		JOIN categories c ON c.id = m.category_id` + where + orderClause(order)

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Int("predicates", len(spec.Predicates())).
			Str("order", order.String()).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query medicines")
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	medicines := []model.Medicine{}
	for rows.Next() {
		var m model.Medicine
		var c model.Category
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Description,
			&m.CategoryID,
			&m.Price,
			&m.StockQuantity,
			&m.RequiresPrescription,
			&m.ExpiryDate,
			&m.CreatedAt,
			&c.ID,
			&c.Name,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan medicine row")
			return nil, fmt.Errorf("failed to scan medicine: %w", err)
		}
		m.Category = &c
		medicines = append(medicines, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating medicine rows")
		return nil, fmt.Errorf("error iterating medicines: %w", err)
	}

	return medicines, nil
}

// Count returns the number of medicines matching spec.
func (r *medicineRepository) Count(ctx context.Context, spec filter.Spec) (int, error) {
	where, args := whereClause(spec, nil)
	query := `SELECT COUNT(*) FROM medicines m` + where

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Error().Err(err).
			Int("predicates", len(spec.Predicates())).
			Msg("failed to count medicines")
		return 0, fmt.Errorf("failed to count medicines: %w", err)
	}

	return count, nil
}

// MaxPrice returns the highest medicine price.
func (r *medicineRepository) MaxPrice(ctx context.Context) (decimal.NullDecimal, error) {
	var maxPrice decimal.NullDecimal
	if err := r.pool.QueryRow(ctx, `SELECT MAX(price) FROM medicines`).Scan(&maxPrice); err != nil {
		r.logger.Error().Err(err).Msg("failed to query max price")
		return decimal.NullDecimal{}, fmt.Errorf("failed to query max price: %w", err)
	}

	return maxPrice, nil
}

// ListDescriptions returns the description of every medicine.
func (r *medicineRepository) ListDescriptions(ctx context.Context) ([]*string, error) {
	rows, err := r.pool.Query(ctx, `SELECT description FROM medicines`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query medicine descriptions")
		return nil, fmt.Errorf("failed to query medicine descriptions: %w", err)
	}
	defer rows.Close()

	var descriptions []*string
	for rows.Next() {
		var description *string
		if err := rows.Scan(&description); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan description row")
			return nil, fmt.Errorf("failed to scan description: %w", err)
		}
		descriptions = append(descriptions, description)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating description rows")
		return nil, fmt.Errorf("error iterating descriptions: %w", err)
	}

	return descriptions, nil
}
