package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosync/internal/app/server/config"
	"todosync/internal/domain/todo"
	"todosync/internal/infrastructure/migration"
	"todosync/internal/infrastructure/storage/storagetest"
	"todosync/internal/utils/logger"
)

type migratorFunc func() error

func (f migratorFunc) Up() error { return f() }

func TestNew_MigrationError(t *testing.T) {
	mg := migratorFunc(func() error { return errors.New("dirty database") })

	_, err := New(context.Background(), "postgres://localhost/none", mg, logger.Discard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
}

// Нужен живой Postgres: TEST_DATABASE_URI=postgres://... go test ./...
func TestStorage(t *testing.T) {
	uri := os.Getenv("TEST_DATABASE_URI")
	if uri == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	ctx := context.Background()
	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverPostgres
	cfg.DB.DatabaseURI = uri

	storagetest.Run(t, func(t *testing.T) todo.Repository {
		s, err := New(ctx, uri, migration.NewMigration(cfg, migration.DefaultEngine), logger.Discard())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		_, err = s.Pool().Exec(ctx, `TRUNCATE todos RESTART IDENTITY`)
		require.NoError(t, err)
		return s
	})
}
