package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"todosync/internal/app/server/config"
	"todosync/internal/domain/todo"
	"todosync/internal/infrastructure/migration"
	"todosync/internal/infrastructure/storage/memory"
	"todosync/internal/infrastructure/storage/postgres"
	"todosync/internal/infrastructure/storage/sqlite"
)

// Storage - хранилище задач вместе с проверкой доступности.
type Storage interface {
	todo.Repository
	Ping(ctx context.Context) error
	Close() error
}

// New открывает хранилище, выбранное DB_DRIVER.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	log = log.With("driver", cfg.DB.Driver)

	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		log.Info("using in-memory storage")
		return memory.New(), nil

	case config.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.DB.DatabaseURI, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, nil

	case config.DriverPostgres:
		mg := migration.NewMigration(cfg, migration.DefaultEngine)
		s, err := postgres.New(ctx, cfg.DB.DatabaseURI, mg, log)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return s, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.DB.Driver)
}
