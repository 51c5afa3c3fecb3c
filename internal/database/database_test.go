package database

import (
	"context"
	"testing"
	"time"

	"pharmazen/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "postgres",
		Database:        "testdb",
		MaxConnections:  5,
		MinConnections:  1,
		MaxConnLifetime: 300,
		MaxConnIdleTime: 60,
	}
}

func TestNewPool_Errors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tests := []struct {
		name     string
		mutate   func(cfg *config.DatabaseConfig)
		errMatch string
	}{
		{
			name: "Cannot connect to database",
			mutate: func(cfg *config.DatabaseConfig) {
				cfg.Host = "invalid-host.invalid"
			},
			errMatch: "failed to ping database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testDatabaseConfig()
			tt.mutate(&cfg)

			pool, err := NewPool(ctx, cfg, zerolog.Nop())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMatch)
			assert.Nil(t, pool)
		})
	}
}

func TestNewPool_AndEnsureSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := testDatabaseConfig()
	cfg.Host = host
	cfg.Port = port.Int()

	pool, err := NewPool(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer pool.Close()

	var appName string
	require.NoError(t, pool.QueryRow(ctx, "SHOW application_name").Scan(&appName))
	assert.Equal(t, "pharmazen", appName)

	// Applying the schema twice is a no-op
	require.NoError(t, EnsureSchema(ctx, pool, zerolog.Nop()))
	require.NoError(t, EnsureSchema(ctx, pool, zerolog.Nop()))

	var tables int
	err = pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_name IN ('categories', 'medicines')
	`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)

	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterPoolMetrics(pool, reg))
	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"db_pool_total_connections",
		"db_pool_idle_connections",
		"db_pool_acquired_connections",
	}, names)
	assert.Error(t, RegisterPoolMetrics(pool, reg))
}
