package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"todosync/internal/app/client"
)

const newTodoID = -1

// formScreen - экран создания или редактирования задачи со своим view-model.
type formScreen struct {
	vm     *client.TodoViewModel
	sub    <-chan uint64
	cancel func()

	id        int
	input     textinput.Model
	completed bool
	nameErr   bool
	filled    bool
	state     client.State
}

func newFormScreen(vm *client.TodoViewModel, id int) *formScreen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ej: Comprar para la semana"
	ti.CharLimit = 200
	ti.Focus()

	sub, cancel := vm.Subscribe()
	f := &formScreen{
		vm:     vm,
		sub:    sub,
		cancel: cancel,
		id:     id,
		input:  ti,
	}

	if f.isEdit() {
		vm.GetTodoByID(id)
	}
	return f
}

func (f *formScreen) isEdit() bool {
	return f.id != newTodoID
}

func (f *formScreen) title() string {
	if f.isEdit() {
		return "Editar Tarea"
	}
	return "Crear tarea"
}

func (f *formScreen) successMessage() string {
	if f.isEdit() {
		return "Tarea actualizada de forma exitosa"
	}
	return "Tarea creada de forma exitosa"
}

// apply переносит снимок view-model в форму. Поля заполняются
// из selectedTodo один раз, чтобы не затирать ввод пользователя.
func (f *formScreen) apply(st client.State) {
	f.state = st
	if f.filled || st.SelectedTodo == nil {
		return
	}
	f.input.SetValue(st.SelectedTodo.Name)
	f.input.CursorEnd()
	f.completed = st.SelectedTodo.IsCompleted
	f.filled = true
}

func (f *formScreen) name() string {
	return strings.TrimSpace(f.input.Value())
}

// submit запускает создание или обновление. false - имя пустое.
func (f *formScreen) submit() bool {
	name := f.name()
	if name == "" {
		f.nameErr = true
		return false
	}
	f.nameErr = false

	if f.isEdit() {
		f.vm.UpdateTodo(name, f.completed, f.id)
	} else {
		f.vm.CreateTodo(name, f.completed)
	}
	return true
}

// close не блокирует цикл событий: Close ждет незавершенные запросы.
func (f *formScreen) close() {
	f.cancel()
	go f.vm.Close()
}

func (f *formScreen) view() string {
	check := boxUnchecked
	if f.completed {
		check = successStyle.Render(boxChecked)
	}

	lines := []string{
		titleStyle.Render(f.title()),
		"",
		"Nombre de la tarea",
		f.input.View(),
	}
	if f.nameErr {
		lines = append(lines, errorStyle.Render("El nombre es requerido"))
	}
	lines = append(lines,
		"",
		check+" Marcar la tarea como completada",
		"",
	)

	action := "Guardar Tarea"
	if f.isEdit() {
		action = "Actualizar Tarea"
	}
	lines = append(lines, helpStyle.Render("enter: "+action+" • tab: completada • esc: volver"))

	if f.state.IsLoading {
		lines = append(lines, mutedStyle.Render("Guardando..."))
	}
	return panel(lines...)
}
