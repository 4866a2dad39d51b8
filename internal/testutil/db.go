package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Postgres — запущенный тестовый контейнер PostgreSQL.
type Postgres struct {
	container *postgres.PostgresContainer
	DSN       string
}

// Terminate останавливает контейнер.
func (p *Postgres) Terminate(ctx context.Context) error {
	return testcontainers.TerminateContainer(p.container)
}

// StartPostgres поднимает PostgreSQL 16 в testcontainer.
// Миграции не применяются: это делает вызывающий пакет.
// Returns an error (never panics) when no Docker host is reachable.
func StartPostgres(ctx context.Context) (pg *Postgres, err error) {
	// testcontainers паникует, если Docker host не найден
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("starting postgres container: %v", r)
		}
	}()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("synergy_test"),
		postgres.WithUsername("synergy"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("starting postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("getting connection string: %w", err)
	}

	return &Postgres{container: container, DSN: dsn}, nil
}
