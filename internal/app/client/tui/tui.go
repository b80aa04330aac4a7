// Package tui - интерактивный экран задач на Bubble Tea.
// Экран только отображает снимки view-model и отправляет намерения.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/exp/slog"

	"todosync/internal/app/client"
)

// ViewModelFactory создает view-model для нового экрана.
type ViewModelFactory func() *client.TodoViewModel

// stateChangedMsg - у vm появилась новая версия состояния.
type stateChangedMsg struct {
	vm *client.TodoViewModel
}

// waitForChange ждет следующего уведомления. Закрытый канал дает nil,
// и Bubble Tea такое сообщение пропускает.
func waitForChange(vm *client.TodoViewModel, ch <-chan uint64) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{vm: vm}
	}
}

type Model struct {
	newVM ViewModelFactory
	log   *slog.Logger

	vm        *client.TodoViewModel
	sub       <-chan uint64
	cancelSub func()
	state     client.State

	list    list.Model
	spinner spinner.Model
	keys    keyMap
	form    *formScreen
	status  string

	width, height int
}

// New создает модель экрана списка. Подписка оформляется сразу,
// загрузка списка начинается в Init.
func New(newVM ViewModelFactory, log *slog.Logger) Model {
	vm := newVM()
	sub, cancel := vm.Subscribe()
	keys := newKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	l := newTodoList(keys)
	l.SetSize(76, 18)

	return Model{
		newVM:     newVM,
		log:       log.With("component", "tui"),
		vm:        vm,
		sub:       sub,
		cancelSub: cancel,
		list:      l,
		spinner:   sp,
		keys:      keys,
		width:     80,
		height:    24,
	}
}

// Run запускает программу и освобождает view-model после выхода.
func Run(ctx context.Context, app *client.App, log *slog.Logger) error {
	m := New(func() *client.TodoViewModel { return app.NewTodoViewModel(ctx) }, log)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.shutdown()
	} else {
		m.shutdown()
	}
	if err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}

func (m Model) shutdown() {
	if m.form != nil {
		m.form.close()
	}
	m.cancelSub()
	m.vm.Close()
}

func (m Model) Init() tea.Cmd {
	m.vm.GetTodos()
	return tea.Batch(waitForChange(m.vm, m.sub), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		return m.onStateChanged(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.FocusMsg:
		// возврат в терминал - то же, что возврат на экран
		if m.form == nil {
			m.resume()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.form != nil {
		var cmd tea.Cmd
		m.form.input, cmd = m.form.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// resume обновляет список, только если он уже не пуст.
func (m *Model) resume() {
	if len(m.state.Todos) > 0 {
		m.log.Debug("screen resumed, refreshing")
		m.vm.RefreshTodos()
	}
}

func (m Model) onStateChanged(msg stateChangedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.vm == m.vm:
		m.state = m.vm.Snapshot()
		m.list.Title = listTitle(m.state.Todos)
		cmd := m.list.SetItems(toItems(m.state.Todos))
		return m, tea.Batch(cmd, waitForChange(m.vm, m.sub))

	case m.form != nil && msg.vm == m.form.vm:
		st := m.form.vm.Snapshot()
		m.form.apply(st)
		next := waitForChange(m.form.vm, m.form.sub)

		switch r := st.UpsertResult.(type) {
		case client.UpsertSuccess:
			m.status = successStyle.Render("✔ " + m.form.successMessage())
			m.closeForm()
			m.resume()
			return m, nil
		case client.UpsertError:
			m.status = errorStyle.Render("Hubo un error " + r.Message)
		default:
			if st.Error != nil && !st.IsLoading {
				m.status = errorStyle.Render(*st.Error)
			}
		}
		return m, next
	}

	// уведомление от уже закрытого экрана
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// во время фильтрации клавиши принадлежат полю ввода
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.add):
		m.openForm(newTodoID)
		return m, waitForChange(m.form.vm, m.form.sub)
	case key.Matches(msg, m.keys.edit):
		if it, ok := m.list.SelectedItem().(todoItem); ok {
			m.openForm(it.todo.ID)
			return m, waitForChange(m.form.vm, m.form.sub)
		}
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		if it, ok := m.list.SelectedItem().(todoItem); ok {
			m.vm.UpdateTodo(it.todo.Name, !it.todo.IsCompleted, it.todo.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.refresh):
		m.status = ""
		m.vm.RefreshTodos()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.resume()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.form.completed = !m.form.completed
		return m, nil
	case "enter":
		if !m.form.state.IsLoading && m.form.submit() {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	m.form.nameErr = m.form.name() == ""
	return m, cmd
}

func (m *Model) openForm(id int) {
	m.status = ""
	m.form = newFormScreen(m.newVM(), id)
}

func (m *Model) closeForm() {
	if m.form == nil {
		return
	}
	m.form.close()
	m.form = nil
}

func (m Model) View() string {
	if m.form != nil {
		return m.form.view() + "\n" + m.status
	}

	var body string
	switch {
	case m.state.IsLoading && len(m.state.Todos) == 0:
		body = m.spinner.View() + " Cargando tareas..."
	case m.state.Error != nil:
		body = m.list.View() + "\n" + errorStyle.Render(*m.state.Error)
	default:
		body = m.list.View()
	}

	if m.status != "" {
		body += "\n" + m.status
	}
	return panel(body)
}
