package todo

import (
	"time"

	"todosync/internal/model"
)

// Todo - задача в хранилище сервера.
type Todo struct {
	ID          int
	Name        string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToModel переводит задачу в представление API: метки времени в RFC 3339.
func (t Todo) ToModel() model.Todo {
	return model.Todo{
		ID:          t.ID,
		Name:        t.Name,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToModels(todos []Todo) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ToModel())
	}
	return out
}
