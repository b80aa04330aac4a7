package todo

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slog"
)

const maxNameLen = 200

type Servicer interface {
	List(ctx context.Context) ([]Todo, error)
	Find(ctx context.Context, id int) (*Todo, error)
	Create(ctx context.Context, name string, isCompleted bool) (*Todo, error)
	Update(ctx context.Context, id int, name string, isCompleted bool) (*Todo, error)
	Delete(ctx context.Context, id int) (*Todo, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "todo_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *Service) Find(ctx context.Context, id int) (*Todo, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string, isCompleted bool) (*Todo, error) {
	name, err := validateName(name)
	if err != nil {
		s.log.Debug("validation failed", "error", err)
		return nil, err
	}

	t := &Todo{Name: name, IsCompleted: isCompleted}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.Info("todo created", "todo_id", t.ID)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int, name string, isCompleted bool) (*Todo, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}

	name, err := validateName(name)
	if err != nil {
		s.log.Debug("validation failed", "todo_id", id, "error", err)
		return nil, err
	}

	t := &Todo{ID: id, Name: name, IsCompleted: isCompleted}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info("todo updated", "todo_id", id)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int) (*Todo, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}

	t, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info("todo deleted", "todo_id", id)
	return t, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidData)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "", fmt.Errorf("%w: more than %d characters", ErrNameTooLong, maxNameLen)
	}
	return name, nil
}
