package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"todosync/internal/domain/todo"
)

type TodoRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTodoRepository(pool *pgxpool.Pool, log *slog.Logger) *TodoRepository {
	return &TodoRepository{
		pool: pool,
		log:  log.With("component", "todo_repository"),
	}
}

func (r *TodoRepository) List(ctx context.Context) ([]todo.Todo, error) {
	const query = `
		SELECT id, name, is_completed, created_at, updated_at
		FROM todos
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list todos", "error", err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Get(ctx context.Context, id int) (*todo.Todo, error) {
	const query = `
		SELECT id, name, is_completed, created_at, updated_at
		FROM todos
		WHERE id = $1`

	t, err := scanTodo(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.notFound(err, "get todo", id)
	}
	return t, nil
}

func (r *TodoRepository) Create(ctx context.Context, t *todo.Todo) error {
	const query = `
		INSERT INTO todos (name, is_completed)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, t.Name, t.IsCompleted).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create todo", "error", err)
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Update(ctx context.Context, t *todo.Todo) error {
	const query = `
		UPDATE todos
		SET name = $1, is_completed = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, t.Name, t.IsCompleted, t.ID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return r.notFound(err, "update todo", t.ID)
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int) (*todo.Todo, error) {
	const query = `
		DELETE FROM todos
		WHERE id = $1
		RETURNING id, name, is_completed, created_at, updated_at`

	t, err := scanTodo(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.notFound(err, "delete todo", id)
	}
	return t, nil
}

func (r *TodoRepository) notFound(err error, op string, id int) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return todo.ErrNotFound
	}
	r.log.Error("failed to "+op, "todo_id", id, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

func scanTodo(row pgx.Row) (*todo.Todo, error) {
	var t todo.Todo
	if err := row.Scan(&t.ID, &t.Name, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
