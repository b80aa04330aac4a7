// Package storagetest - общий набор проверок для реализаций todo.Repository.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosync/internal/domain/todo"
)

// Run прогоняет проверки на свежем хранилище для каждого подтеста.
func Run(t *testing.T, newRepo func(t *testing.T) todo.Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("create assigns ids in order", func(t *testing.T) {
		repo := newRepo(t)

		milk := &todo.Todo{Name: "Buy milk"}
		car := &todo.Todo{Name: "Wash car", IsCompleted: true}
		require.NoError(t, repo.Create(ctx, milk))
		require.NoError(t, repo.Create(ctx, car))

		assert.Positive(t, milk.ID)
		assert.Greater(t, car.ID, milk.ID)
		assert.False(t, milk.CreatedAt.IsZero())
		assert.False(t, milk.UpdatedAt.IsZero())

		todos, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, "Buy milk", todos[0].Name)
		assert.Equal(t, "Wash car", todos[1].Name)
		assert.True(t, todos[1].IsCompleted)
	})

	t.Run("empty list", func(t *testing.T) {
		repo := newRepo(t)

		todos, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, todos)
	})

	t.Run("get", func(t *testing.T) {
		repo := newRepo(t)
		milk := &todo.Todo{Name: "Buy milk"}
		require.NoError(t, repo.Create(ctx, milk))

		got, err := repo.Get(ctx, milk.ID)
		require.NoError(t, err)
		assert.Equal(t, milk.ID, got.ID)
		assert.Equal(t, "Buy milk", got.Name)

		_, err = repo.Get(ctx, milk.ID+100)
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		repo := newRepo(t)
		car := &todo.Todo{Name: "Wash car"}
		require.NoError(t, repo.Create(ctx, car))

		upd := &todo.Todo{ID: car.ID, Name: "Wash the car", IsCompleted: true}
		require.NoError(t, repo.Update(ctx, upd))
		assert.Equal(t, car.CreatedAt.Unix(), upd.CreatedAt.Unix())
		assert.False(t, upd.UpdatedAt.Before(car.UpdatedAt))

		got, err := repo.Get(ctx, car.ID)
		require.NoError(t, err)
		assert.Equal(t, "Wash the car", got.Name)
		assert.True(t, got.IsCompleted)

		err = repo.Update(ctx, &todo.Todo{ID: car.ID + 100, Name: "x"})
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)
		milk := &todo.Todo{Name: "Buy milk"}
		require.NoError(t, repo.Create(ctx, milk))

		deleted, err := repo.Delete(ctx, milk.ID)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", deleted.Name)

		_, err = repo.Get(ctx, milk.ID)
		assert.ErrorIs(t, err, todo.ErrNotFound)

		_, err = repo.Delete(ctx, milk.ID)
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})
}
