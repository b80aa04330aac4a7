package client

import (
	"context"

	"golang.org/x/exp/slog"

	"todosync/internal/model"
	"todosync/internal/utils/result"
)

// Сообщения об ошибках, которые видит пользователь.
const (
	MsgServerError  = "Error en el servidor"
	MsgListFailed   = "Error al obtener las tareas"
	MsgGetFailed    = "Error al obtener la tarea"
	MsgCreateFailed = "Error al crear la tarea"
	MsgUpdateFailed = "Error al actualizar la tarea"
	MsgDeleteFailed = "Error al eliminar la tarea"
)

// TodoRepository - единственное место, где сбой API превращается в доменную ошибку.
// Ни один метод не возвращает error: все исходы передаются через result.Result.
type TodoRepository interface {
	GetTodos(ctx context.Context) result.Result[[]model.Todo]
	GetTodoByID(ctx context.Context, id int) result.Result[model.Todo]
	CreateTodo(ctx context.Context, upsert model.TodoUpsert) result.Result[model.Todo]
	UpdateTodo(ctx context.Context, id int, upsert model.TodoUpsert) result.Result[model.Todo]
	DeleteTodo(ctx context.Context, id int) result.Result[model.Todo]
}

type todoRepository struct {
	api TodoAPI
	log *slog.Logger
}

// NewTodoRepository оборачивает api. Кэширования и повторов нет.
func NewTodoRepository(api TodoAPI, log *slog.Logger) TodoRepository {
	return &todoRepository{
		api: api,
		log: log.With("component", "todo_repository"),
	}
}

func (r *todoRepository) GetTodos(ctx context.Context) result.Result[[]model.Todo] {
	env, err := r.api.GetTodos(ctx)
	if err != nil {
		r.log.Error("failed to list todos", "error", err)
		return result.Error[[]model.Todo](MsgServerError, err)
	}
	if !env.Success {
		r.log.Warn("server rejected list", "total", env.Total)
		return result.Error[[]model.Todo](MsgListFailed, nil)
	}
	return result.Success(env.Data)
}

func (r *todoRepository) GetTodoByID(ctx context.Context, id int) result.Result[model.Todo] {
	env, err := r.api.GetTodoByID(ctx, id)
	return r.itemResult("get", id, env, err, MsgGetFailed)
}

func (r *todoRepository) CreateTodo(ctx context.Context, upsert model.TodoUpsert) result.Result[model.Todo] {
	env, err := r.api.CreateTodo(ctx, upsert)
	return r.itemResult("create", 0, env, err, MsgCreateFailed)
}

func (r *todoRepository) UpdateTodo(ctx context.Context, id int, upsert model.TodoUpsert) result.Result[model.Todo] {
	env, err := r.api.UpdateTodo(ctx, id, upsert)
	return r.itemResult("update", id, env, err, MsgUpdateFailed)
}

func (r *todoRepository) DeleteTodo(ctx context.Context, id int) result.Result[model.Todo] {
	env, err := r.api.DeleteTodo(ctx, id)
	return r.itemResult("delete", id, env, err, MsgDeleteFailed)
}

func (r *todoRepository) itemResult(action string, id int, env *model.ItemEnvelope, err error, rejected string) result.Result[model.Todo] {
	if err != nil {
		r.log.Error("todo request failed", "action", action, "todo_id", id, "error", err)
		return result.Error[model.Todo](MsgServerError, err)
	}
	if !env.Success {
		// текст сервера не показываем, только фиксированное сообщение
		r.log.Warn("server rejected todo request", "action", action, "todo_id", id, "message", env.Message)
		return result.Error[model.Todo](rejected, nil)
	}
	return result.Success(env.Data)
}
