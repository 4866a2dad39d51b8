package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/synergy/internal/db/migrations"
)

// Migrate applies pending journal migrations through the already open pool.
// Returns the versions that were applied, oldest first.
func (d *DB) Migrate(ctx context.Context) ([]int64, error) {
	// goose needs database/sql; reuse the pool's parsed connection settings
	connStr := stdlib.RegisterConnConfig(d.pool.Config().ConnConfig)
	defer stdlib.UnregisterConnConfig(connStr)

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("applying journal migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
		slog.Info("journal migration applied",
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return applied, nil
}
