package todo

import "context"

// Repository - хранилище задач. Отсутствующий id дает ErrNotFound.
type Repository interface {
	List(ctx context.Context) ([]Todo, error)
	Get(ctx context.Context, id int) (*Todo, error)
	// Create заполняет ID и метки времени переданной задачи.
	Create(ctx context.Context, todo *Todo) error
	// Update заменяет Name и IsCompleted, обновляет UpdatedAt
	// и заполняет метки времени переданной задачи.
	Update(ctx context.Context, todo *Todo) error
	// Delete возвращает удаленную задачу.
	Delete(ctx context.Context, id int) (*Todo, error)
}
