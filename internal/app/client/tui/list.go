package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"todosync/internal/model"
)

// todoItem адаптирует model.Todo к list.Item
type todoItem struct {
	todo model.Todo
}

func (i todoItem) Title() string       { return i.todo.Name }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.todo.Name }

// однострочный делегат
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Name
	if it.todo.IsCompleted {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text) + " " + successStyle.Render("Completada")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s\n", prefix, box, text)
}

type keyMap struct {
	add     key.Binding
	edit    key.Binding
	toggle  key.Binding
	refresh key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "agregar")),
		edit:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "editar")),
		toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "completar")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "actualizar")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.add, k.edit, k.toggle, k.refresh}
}

func newTodoList(keys keyMap) list.Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Lista de Tareas"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("tarea", "tareas")
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings
	return l
}

func toItems(todos []model.Todo) []list.Item {
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoItem{todo: t})
	}
	return items
}

func listTitle(todos []model.Todo) string {
	done := 0
	for _, t := range todos {
		if t.IsCompleted {
			done++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Lista de Tareas"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(todos)-done,
		accentStyle.Render("Total"), len(todos),
	)
}
