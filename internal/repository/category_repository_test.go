package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_CreateMany(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewCategoryRepository(pool, zerolog.Nop())

	tests := []struct {
		name            string
		names           []string
		expectedCreated int
		expectedTotal   int
	}{
		{
			name:            "Create new categories",
			names:           []string{"Analgesic", "Antibiotic", "Uncategorized"},
			expectedCreated: 3,
			expectedTotal:   3,
		},
		{
			name:            "Existing names are skipped",
			names:           []string{"Analgesic", "Antacid"},
			expectedCreated: 1,
			expectedTotal:   4,
		},
		{
			name:            "Names are case sensitive",
			names:           []string{"analgesic"},
			expectedCreated: 1,
			expectedTotal:   5,
		},
		{
			name:            "Empty input",
			names:           nil,
			expectedCreated: 0,
			expectedTotal:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := repo.CreateMany(ctx, tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCreated, created)

			categories, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, categories, tt.expectedTotal)
		})
	}
}

func TestCategoryRepository_List(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewCategoryRepository(pool, zerolog.Nop())

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)

	_, err = repo.CreateMany(ctx, []string{"Vitamin", "Antacid", "Uncategorized"})
	require.NoError(t, err)

	categories, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "Antacid", categories[0].Name)
	assert.Equal(t, "Uncategorized", categories[1].Name)
	assert.Equal(t, "Vitamin", categories[2].Name)

	seen := make(map[uuid.UUID]bool)
	for _, c := range categories {
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.False(t, seen[c.ID], "category ids must be unique")
		seen[c.ID] = true
	}
}
