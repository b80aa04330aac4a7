package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosync/internal/app/client"
	"todosync/internal/model"
	"todosync/internal/utils/logger"
	"todosync/internal/utils/result"
)

type stubRepository struct {
	mu        sync.Mutex
	todos     []model.Todo
	listCalls int
	nextID    int
}

func (s *stubRepository) GetTodos(context.Context) result.Result[[]model.Todo] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	return result.Success(append([]model.Todo(nil), s.todos...))
}

func (s *stubRepository) GetTodoByID(_ context.Context, id int) result.Result[model.Todo] {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			return result.Success(t)
		}
	}
	return result.Error[model.Todo](client.MsgGetFailed, nil)
}

func (s *stubRepository) CreateTodo(_ context.Context, upsert model.TodoUpsert) result.Result[model.Todo] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := model.Todo{ID: s.nextID, Name: upsert.Name, IsCompleted: upsert.IsCompleted}
	s.todos = append(s.todos, t)
	return result.Success(t)
}

func (s *stubRepository) UpdateTodo(_ context.Context, id int, upsert model.TodoUpsert) result.Result[model.Todo] {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.todos {
		if t.ID == id {
			t.Name, t.IsCompleted = upsert.Name, upsert.IsCompleted
			s.todos[i] = t
			return result.Success(t)
		}
	}
	return result.Error[model.Todo](client.MsgUpdateFailed, nil)
}

func (s *stubRepository) DeleteTodo(context.Context, int) result.Result[model.Todo] {
	return result.Error[model.Todo](client.MsgDeleteFailed, nil)
}

func (s *stubRepository) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func newTestModel(t *testing.T, repo *stubRepository) Model {
	t.Helper()
	log := logger.Discard()
	m := New(func() *client.TodoViewModel {
		return client.NewTodoViewModel(context.Background(), repo, log)
	}, log)
	t.Cleanup(m.shutdown)

	m.Init()
	m.vm.Wait()
	return settle(t, m, m.vm)
}

// settle доставляет модели уведомление от vm после завершения его задач.
func settle(t *testing.T, m Model, vm *client.TodoViewModel) Model {
	t.Helper()
	vm.Wait()
	next, _ := m.Update(stateChangedMsg{vm: vm})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadsListOnInit(t *testing.T) {
	repo := &stubRepository{todos: []model.Todo{{ID: 1, Name: "Buy milk"}}, nextID: 1}
	m := newTestModel(t, repo)

	assert.Len(t, m.list.Items(), 1)
	assert.Equal(t, 1, repo.calls())
	assert.Contains(t, m.View(), "Buy milk")
}

func TestModel_FocusRefreshesNonEmptyList(t *testing.T) {
	repo := &stubRepository{todos: []model.Todo{{ID: 1, Name: "Buy milk"}}, nextID: 1}
	m := newTestModel(t, repo)

	next, _ := m.Update(tea.FocusMsg{})
	m = settle(t, next.(Model), m.vm)

	assert.Equal(t, 2, repo.calls())
}

func TestModel_FocusSkipsEmptyList(t *testing.T) {
	repo := &stubRepository{}
	m := newTestModel(t, repo)

	next, _ := m.Update(tea.FocusMsg{})
	next.(Model).vm.Wait()

	assert.Equal(t, 1, repo.calls())
}

func TestModel_CreateFromForm(t *testing.T) {
	repo := &stubRepository{todos: []model.Todo{{ID: 1, Name: "Buy milk"}}, nextID: 1}
	m := newTestModel(t, repo)

	m = press(t, m, runes("a"))
	require.NotNil(t, m.form)
	assert.False(t, m.form.isEdit())

	m = press(t, m, runes("Wash car"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	formVM := m.form.vm
	m = settle(t, m, formVM)

	assert.Nil(t, m.form, "после успеха экран формы закрывается")
	assert.Contains(t, m.status, "Tarea creada de forma exitosa")

	// возврат на непустой список запускает обновление
	m = settle(t, m, m.vm)
	assert.Equal(t, 2, repo.calls())
	assert.Len(t, m.list.Items(), 2)
}

func TestModel_FormRejectsBlankName(t *testing.T) {
	repo := &stubRepository{}
	m := newTestModel(t, repo)

	m = press(t, m, runes("a"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.form)
	assert.True(t, m.form.nameErr)
	assert.Contains(t, m.View(), "El nombre es requerido")
}

func TestModel_EditLoadsSelectedTodo(t *testing.T) {
	repo := &stubRepository{todos: []model.Todo{{ID: 3, Name: "Buy milk", IsCompleted: true}}, nextID: 3}
	m := newTestModel(t, repo)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.form)
	require.True(t, m.form.isEdit())

	m = settle(t, m, m.form.vm)
	assert.Equal(t, "Buy milk", m.form.input.Value())
	assert.True(t, m.form.completed)
	assert.Contains(t, m.View(), "Editar Tarea")
}

func TestModel_ToggleCompleted(t *testing.T) {
	repo := &stubRepository{todos: []model.Todo{{ID: 1, Name: "Buy milk"}}, nextID: 1}
	m := newTestModel(t, repo)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = settle(t, m, m.vm)

	require.Len(t, m.state.Todos, 1)
	assert.True(t, m.state.Todos[0].IsCompleted)
}

func TestModel_EscReturnsToList(t *testing.T) {
	repo := &stubRepository{todos: []model.Todo{{ID: 1, Name: "Buy milk"}}, nextID: 1}
	m := newTestModel(t, repo)

	m = press(t, m, runes("a"))
	require.NotNil(t, m.form)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.form)

	m.vm.Wait()
	assert.Equal(t, 2, repo.calls())
}
