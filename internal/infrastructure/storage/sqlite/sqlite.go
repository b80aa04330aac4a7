// Package sqlite - хранилище задач в файле SQLite (mattn/go-sqlite3).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"todosync/internal/domain/todo"
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT     NOT NULL,
	is_completed BOOLEAN  NOT NULL DEFAULT 0,
	created_at   DATETIME NOT NULL,
	updated_at   DATETIME NOT NULL
);`

const selectColumns = `SELECT id, name, is_completed, created_at, updated_at FROM todos`

type Storage struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// New открывает базу по dsn и создает таблицы. dsn ":memory:" дает
// временную базу, поэтому соединение одно.
func New(ctx context.Context, dsn string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Storage{
		db:  db,
		log: log.With("component", "sqlite_storage"),
		now: func() time.Time { return time.Now().UTC() },
	}

	if err := s.initTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Storage) initTables(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

func (s *Storage) List(ctx context.Context) ([]todo.Todo, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY id`)
	if err != nil {
		s.log.Error("failed to list todos", "error", err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *Storage) Get(ctx context.Context, id int) (*todo.Todo, error) {
	return s.get(ctx, s.db, id)
}

func (s *Storage) Create(ctx context.Context, t *todo.Todo) error {
	now := s.now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (name, is_completed, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		t.Name, t.IsCompleted, now, now,
	)
	if err != nil {
		s.log.Error("failed to create todo", "error", err)
		return fmt.Errorf("create todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	t.ID = int(id)
	t.CreatedAt, t.UpdatedAt = now, now
	return nil
}

func (s *Storage) Update(ctx context.Context, t *todo.Todo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE todos SET name = ?, is_completed = ?, updated_at = ? WHERE id = ?`,
		t.Name, t.IsCompleted, s.now(), t.ID,
	)
	if err != nil {
		s.log.Error("failed to update todo", "todo_id", t.ID, "error", err)
		return fmt.Errorf("update todo: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return todo.ErrNotFound
	}

	updated, err := s.get(ctx, tx, t.ID)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	*t = *updated
	return nil
}

func (s *Storage) Delete(ctx context.Context, id int) (*todo.Todo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := s.get(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id); err != nil {
		s.log.Error("failed to delete todo", "todo_id", id, "error", err)
		return nil, fmt.Errorf("delete todo: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return t, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Storage) get(ctx context.Context, q queryer, id int) (*todo.Todo, error) {
	t, err := scanTodo(q.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, todo.ErrNotFound
		}
		s.log.Error("failed to get todo", "todo_id", id, "error", err)
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (*todo.Todo, error) {
	var t todo.Todo
	if err := row.Scan(&t.ID, &t.Name, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
