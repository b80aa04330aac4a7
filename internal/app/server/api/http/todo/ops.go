package todo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-list",
		Method:      http.MethodGet,
		Path:        "/api/todos",
		Summary:     "Список задач",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-find",
		Method:      http.MethodGet,
		Path:        "/api/todos/{id}",
		Summary:     "Получить задачу",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "todos-create",
		Method:        http.MethodPost,
		Path:          "/api/todos",
		Summary:       "Создать задачу",
		Tags:          []string{"todos"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-update",
		Method:      http.MethodPut,
		Path:        "/api/todos/{id}",
		Summary:     "Обновить задачу",
		Description: "Заменяет название и статус задачи целиком.",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-delete",
		Method:      http.MethodDelete,
		Path:        "/api/todos/{id}",
		Summary:     "Удалить задачу",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}
