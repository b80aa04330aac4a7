package memory

import (
	"testing"

	"todosync/internal/domain/todo"
	"todosync/internal/infrastructure/storage/storagetest"
)

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) todo.Repository {
		return New()
	})
}
