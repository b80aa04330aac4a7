package todo

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"todosync/internal/domain/todo"
	"todosync/internal/model"
)

const (
	msgNotFound     = "Tarea no encontrada"
	msgNameRequired = "El nombre es requerido"
	msgNameTooLong  = "El nombre es demasiado largo"
)

type Handler struct {
	service    todo.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service todo.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "todo_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	todos, err := h.service.List(ctx)
	if err != nil {
		h.log.Error("failed to list todos", "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	data := todo.ToModels(todos)
	return &listOutput{
		Body: model.ListEnvelope{Success: true, Data: data, Total: len(data)},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*itemOutput, error) {
	t, err := h.service.Find(ctx, input.ID)
	return h.item(http.StatusOK, t, err)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	t, err := h.service.Create(ctx, input.Body.Name, input.Body.IsCompleted)
	return h.item(http.StatusCreated, t, err)
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*itemOutput, error) {
	t, err := h.service.Update(ctx, input.ID, input.Body.Name, input.Body.IsCompleted)
	return h.item(http.StatusOK, t, err)
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*itemOutput, error) {
	t, err := h.service.Delete(ctx, input.ID)
	return h.item(http.StatusOK, t, err)
}

// item переводит результат сервиса в конверт. Доменные ошибки
// становятся отказом с сообщением, остальные - 500.
func (h *Handler) item(status int, t *todo.Todo, err error) (*itemOutput, error) {
	switch {
	case err == nil:
		return &itemOutput{
			Status: status,
			Body:   model.ItemEnvelope{Success: true, Data: t.ToModel()},
		}, nil
	case errors.Is(err, todo.ErrNotFound):
		return rejected(http.StatusNotFound, msgNotFound), nil
	case errors.Is(err, todo.ErrNameTooLong):
		return rejected(http.StatusUnprocessableEntity, msgNameTooLong), nil
	case errors.Is(err, todo.ErrInvalidData):
		return rejected(http.StatusUnprocessableEntity, msgNameRequired), nil
	}

	h.log.Error("todo operation failed", "error", err)
	return nil, huma.Error500InternalServerError("internal error")
}

func rejected(status int, msg string) *itemOutput {
	return &itemOutput{
		Status: status,
		Body:   model.ItemEnvelope{Success: false, Message: msg},
	}
}
