package client

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/exp/slog"

	"todosync/internal/model"
	"todosync/internal/utils/result"
)

// UpsertResult - исход последнего создания или обновления:
// UpsertSuccess либо UpsertError. nil - результата еще нет.
type UpsertResult interface {
	isUpsertResult()
}

type UpsertSuccess struct {
	Todo model.Todo
}

type UpsertError struct {
	Message string
}

func (UpsertSuccess) isUpsertResult() {}
func (UpsertError) isUpsertResult()   {}

// State - согласованный снимок всех полей view-model.
type State struct {
	Todos        []model.Todo
	IsLoading    bool
	Error        *string
	UpsertResult UpsertResult
	SelectedTodo *model.Todo
}

// TodoViewModel хранит наблюдаемое состояние экрана задач и запускает
// запросы к репозиторию, по одной асинхронной задаче на намерение.
//
// Все изменения состояния проходят под mu, каждое поле заменяется целиком.
// isLoading общий для всех задач: завершившаяся задача сбрасывает его,
// даже если другая еще выполняется.
type TodoViewModel struct {
	repo TodoRepository
	log  *slog.Logger
	ctx  context.Context

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool

	todos        *Value[[]model.Todo]
	isLoading    *Value[bool]
	errMsg       *Value[*string]
	upsertResult *Value[UpsertResult]
	selectedTodo *Value[*model.Todo]
	version      *Value[uint64]
}

// NewTodoViewModel создает view-model. Отмена ctx не прерывает уже
// запущенные запросы: они завершаются и обновляют состояние.
func NewTodoViewModel(ctx context.Context, repo TodoRepository, log *slog.Logger) *TodoViewModel {
	return &TodoViewModel{
		repo:         repo,
		log:          log.With("component", "todo_viewmodel"),
		ctx:          context.WithoutCancel(ctx),
		todos:        NewValue[[]model.Todo](nil),
		isLoading:    NewValue(false),
		errMsg:       NewValue[*string](nil),
		upsertResult: NewValue[UpsertResult](nil),
		selectedTodo: NewValue[*model.Todo](nil),
		version:      NewValue[uint64](0),
	}
}

func (vm *TodoViewModel) Todos() Reader[[]model.Todo]        { return vm.todos }
func (vm *TodoViewModel) IsLoading() Reader[bool]            { return vm.isLoading }
func (vm *TodoViewModel) ErrorMessage() Reader[*string]      { return vm.errMsg }
func (vm *TodoViewModel) UpsertResult() Reader[UpsertResult] { return vm.upsertResult }
func (vm *TodoViewModel) SelectedTodo() Reader[*model.Todo]  { return vm.selectedTodo }

// Subscribe сообщает об изменениях номером версии состояния.
// Само состояние читается через Snapshot.
func (vm *TodoViewModel) Subscribe() (<-chan uint64, func()) {
	return vm.version.Subscribe()
}

// Snapshot возвращает состояние, прочитанное под одной блокировкой.
func (vm *TodoViewModel) Snapshot() State {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return State{
		Todos:        slices.Clone(vm.todos.Get()),
		IsLoading:    vm.isLoading.Get(),
		Error:        vm.errMsg.Get(),
		UpsertResult: vm.upsertResult.Get(),
		SelectedTodo: vm.selectedTodo.Get(),
	}
}

// GetTodos заменяет список целиком ответом сервера.
func (vm *TodoViewModel) GetTodos() {
	if !vm.begin(func() {
		vm.errMsg.Set(nil)
	}) {
		return
	}

	vm.launch(func(ctx context.Context) func() {
		res := vm.repo.GetTodos(ctx)
		return func() {
			res.OnSuccess(func(todos []model.Todo) {
				vm.log.Debug("todos loaded", "count", len(todos))
				vm.todos.Set(todos)
			}).OnError(vm.setError)
		}
	})
}

// RefreshTodos - повторный GetTodos, без слияния.
func (vm *TodoViewModel) RefreshTodos() {
	vm.GetTodos()
}

// CreateTodo при успехе добавляет задачу в конец списка.
func (vm *TodoViewModel) CreateTodo(name string, isCompleted bool) {
	if !vm.begin(vm.clearUpsert) {
		return
	}

	upsert := model.TodoUpsert{Name: name, IsCompleted: isCompleted}
	vm.launch(func(ctx context.Context) func() {
		res := vm.repo.CreateTodo(ctx, upsert)
		return func() {
			vm.applyUpsert(res, appendTodo)
		}
	})
}

// UpdateTodo при успехе заменяет задачу с тем же id (или добавляет, если ее нет).
func (vm *TodoViewModel) UpdateTodo(name string, isCompleted bool, id int) {
	if !vm.begin(vm.clearUpsert) {
		return
	}

	upsert := model.TodoUpsert{Name: name, IsCompleted: isCompleted}
	vm.launch(func(ctx context.Context) func() {
		res := vm.repo.UpdateTodo(ctx, id, upsert)
		return func() {
			vm.applyUpsert(res, replaceTodo)
		}
	})
}

// GetTodoByID загружает задачу в selectedTodo.
func (vm *TodoViewModel) GetTodoByID(id int) {
	if !vm.begin(func() {
		vm.errMsg.Set(nil)
	}) {
		return
	}

	vm.launch(func(ctx context.Context) func() {
		res := vm.repo.GetTodoByID(ctx, id)
		return func() {
			res.OnSuccess(func(todo model.Todo) {
				vm.selectedTodo.Set(&todo)
			}).OnError(vm.setError)
		}
	})
}

// Wait блокируется до завершения всех запущенных задач.
func (vm *TodoViewModel) Wait() {
	vm.wg.Wait()
}

// Close дожидается запущенных задач и закрывает подписки.
// Намерения после Close игнорируются.
func (vm *TodoViewModel) Close() {
	vm.mu.Lock()
	vm.closed = true
	vm.mu.Unlock()

	vm.wg.Wait()

	vm.todos.Close()
	vm.isLoading.Close()
	vm.errMsg.Close()
	vm.upsertResult.Close()
	vm.selectedTodo.Close()
	vm.version.Close()
}

// begin выполняет первый шаг намерения синхронно: isLoading=true и
// очистка полей. false - view-model уже закрыт.
func (vm *TodoViewModel) begin(clear func()) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed {
		vm.log.Warn("intent ignored: view-model closed")
		return false
	}

	vm.isLoading.Set(true)
	clear()
	vm.bump()
	vm.wg.Add(1)
	return true
}

// launch выполняет запрос в горутине. Возвращенная задачей функция
// применяется вместе со сбросом isLoading одной транзакцией.
func (vm *TodoViewModel) launch(task func(ctx context.Context) func()) {
	go func() {
		defer vm.wg.Done()

		var apply func()
		defer func() {
			vm.mutate(func() {
				if apply != nil {
					apply()
				}
				vm.isLoading.Set(false)
			})
		}()

		apply = task(vm.ctx)
	}()
}

func (vm *TodoViewModel) mutate(fn func()) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	fn()
	vm.bump()
}

func (vm *TodoViewModel) bump() {
	vm.version.Update(func(v uint64) uint64 { return v + 1 })
}

func (vm *TodoViewModel) clearUpsert() {
	vm.errMsg.Set(nil)
	vm.upsertResult.Set(nil)
}

func (vm *TodoViewModel) setError(message string) {
	vm.log.Debug("intent failed", "message", message)
	vm.errMsg.Set(&message)
}

func (vm *TodoViewModel) applyUpsert(res result.Result[model.Todo], merge func([]model.Todo, model.Todo) []model.Todo) {
	res.OnSuccess(func(todo model.Todo) {
		vm.todos.Set(merge(vm.todos.Get(), todo))
		vm.upsertResult.Set(UpsertSuccess{Todo: todo})
	}).OnError(func(message string) {
		vm.setError(message)
		vm.upsertResult.Set(UpsertError{Message: message})
	})
}

func appendTodo(todos []model.Todo, todo model.Todo) []model.Todo {
	out := make([]model.Todo, 0, len(todos)+1)
	out = append(out, todos...)
	return append(out, todo)
}

func replaceTodo(todos []model.Todo, todo model.Todo) []model.Todo {
	out := make([]model.Todo, 0, len(todos)+1)
	replaced := false
	for _, cur := range todos {
		if cur.ID == todo.ID {
			out = append(out, todo)
			replaced = true
			continue
		}
		out = append(out, cur)
	}
	if !replaced {
		out = append(out, todo)
	}
	return out
}
