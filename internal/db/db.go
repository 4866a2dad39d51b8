package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Пул журнала трафаретов маленький: сканер пишет по одной строке на открытие.
const (
	defaultMaxConns       = 4
	defaultConnectTimeout = 10 * time.Second
)

// DB — пул соединений с базой журнала трафаретов.
type DB struct {
	pool *pgxpool.Pool
}

// Option tunes the pool before it connects.
type Option func(*pgxpool.Config)

// WithMaxConns caps the pool size. Values below 1 are ignored.
func WithMaxConns(n int32) Option {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = n
		}
	}
}

// New parses dsn, opens the pool and checks the server answers within the
// connect timeout.
func New(ctx context.Context, dsn string, opts ...Option) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database dsn: %w", err)
	}
	cfg.MaxConns = defaultMaxConns
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating stencil journal pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging stencil journal database: %w", err)
	}

	return &DB{pool: pool}, nil
}

func (d *DB) Close() { d.pool.Close() }

// Pool returns the underlying pgx pool for repositories.
func (d *DB) Pool() *pgxpool.Pool { return d.pool }
