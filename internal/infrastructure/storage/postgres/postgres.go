package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// Migrator накатывает схему до открытия пула.
type Migrator interface {
	Up() error
}

type Storage struct {
	*TodoRepository
	pool *pgxpool.Pool
}

func New(ctx context.Context, uri string, mg Migrator, log *slog.Logger) (*Storage, error) {
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &Storage{
		TodoRepository: NewTodoRepository(pool, log),
		pool:           pool,
	}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
