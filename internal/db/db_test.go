package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/synergy/internal/testutil"
)

func TestWithMaxConns(t *testing.T) {
	cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/db")
	require.NoError(t, err)

	WithMaxConns(9)(cfg)
	assert.Equal(t, int32(9), cfg.MaxConns)

	WithMaxConns(0)(cfg)
	assert.Equal(t, int32(9), cfg.MaxConns, "non-positive sizes are ignored")
}

func TestNew_BadDSN(t *testing.T) {
	_, err := New(context.Background(), "postgres://u:p@localhost:notaport/db")
	assert.ErrorContains(t, err, "parsing database dsn")
}

func TestMigrate_IsIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)

	applied, err := testDB.Migrate(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied, "TestMain already applied every migration")

	var n int
	require.NoError(t, testPool.QueryRow(ctx, `SELECT count(*) FROM character_stencils`).Scan(&n))
	assert.Zero(t, n)
}
