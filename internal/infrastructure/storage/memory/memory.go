// Package memory - хранилище задач в памяти процесса.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"todosync/internal/domain/todo"
)

type Storage struct {
	mu     sync.RWMutex
	todos  map[int]todo.Todo
	nextID int
	now    func() time.Time
}

func New() *Storage {
	return &Storage{
		todos:  make(map[int]todo.Todo),
		nextID: 1,
		now:    time.Now,
	}
}

func (s *Storage) List(_ context.Context) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]todo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Storage) Get(_ context.Context, id int) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, todo.ErrNotFound
	}
	return &t, nil
}

func (s *Storage) Create(_ context.Context, t *todo.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t.ID = s.nextID
	t.CreatedAt, t.UpdatedAt = now, now
	s.nextID++
	s.todos[t.ID] = *t
	return nil
}

func (s *Storage) Update(_ context.Context, t *todo.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.todos[t.ID]
	if !ok {
		return todo.ErrNotFound
	}
	cur.Name = t.Name
	cur.IsCompleted = t.IsCompleted
	cur.UpdatedAt = s.now()
	s.todos[t.ID] = cur
	*t = cur
	return nil
}

func (s *Storage) Delete(_ context.Context, id int) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, todo.ErrNotFound
	}
	delete(s.todos, id)
	return &t, nil
}

func (s *Storage) Ping(_ context.Context) error {
	return nil
}

func (s *Storage) Close() error {
	return nil
}
