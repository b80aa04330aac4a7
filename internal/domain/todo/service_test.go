package todo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Todo), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Todo), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, todo *Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, todo *Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) (*Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Todo), args.Error(1)
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	todos := []Todo{{ID: 1, Name: "Buy milk"}, {ID: 2, Name: "Wash car", IsCompleted: true}}
	mockRepo.On("List", mock.Anything).Return(todos, nil)

	got, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, todos, got)
	mockRepo.AssertExpectations(t)
}

func TestService_List_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	dbErr := errors.New("database error")
	mockRepo.On("List", mock.Anything).Return(nil, dbErr)

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(td *Todo) bool {
		return td.Name == "Wash car" && !td.IsCompleted
	})).Run(func(args mock.Arguments) {
		td := args.Get(1).(*Todo)
		td.ID = 7
		td.CreatedAt, td.UpdatedAt = now, now
	}).Return(nil)

	got, err := service.Create(context.Background(), "  Wash car  ", false)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Wash car", got.Name)
	assert.Equal(t, now, got.CreatedAt)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_InvalidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only spaces", input: "   "},
		{name: "too long", input: strings.Repeat("x", maxNameLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			_, err := service.Create(context.Background(), tt.input, false)
			assert.ErrorIs(t, err, ErrInvalidData)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Find(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 1).Return(&Todo{ID: 1, Name: "Buy milk"}, nil)
	mockRepo.On("Get", mock.Anything, 99).Return(nil, ErrNotFound)

	got, err := service.Find(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Name)

	_, err = service.Find(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Find(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Update", mock.Anything, &Todo{ID: 7, Name: "Wash car", IsCompleted: true}).Return(nil)
	mockRepo.On("Update", mock.Anything, &Todo{ID: 8, Name: "Gone", IsCompleted: false}).Return(ErrNotFound)

	got, err := service.Update(context.Background(), 7, "Wash car", true)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)

	_, err = service.Update(context.Background(), 8, "Gone", false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Update(context.Background(), 7, " ", true)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, 3).Return(&Todo{ID: 3, Name: "Old"}, nil)
	mockRepo.On("Delete", mock.Anything, 4).Return(nil, ErrNotFound)

	got, err := service.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ID)

	_, err = service.Delete(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodo_ToModel(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	todo := Todo{ID: 1, Name: "Buy milk", CreatedAt: created, UpdatedAt: created}

	m := todo.ToModel()
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, "2024-01-02T02:04:05Z", m.CreatedAt)
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
	assert.Len(t, ToModels([]Todo{todo, todo}), 2)
}
