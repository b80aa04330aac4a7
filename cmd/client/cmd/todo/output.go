package todo

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"todosync/internal/model"
)

var (
	doneMark    = color.GreenString("✔")
	pendingMark = color.YellowString("•")
)

func status(t model.Todo) string {
	if t.IsCompleted {
		return "Completada"
	}
	return "Pendiente"
}

func printTodosSimple(w io.Writer, todos []model.Todo) error {
	if len(todos) == 0 {
		fmt.Fprintln(w, "No hay tareas")
		return nil
	}

	for _, t := range todos {
		mark := pendingMark
		if t.IsCompleted {
			mark = doneMark
		}
		fmt.Fprintf(w, "%s %d. %s\n", mark, t.ID, t.Name)
	}
	fmt.Fprintf(w, "\nTotal: %d\n", len(todos))
	return nil
}

func printTodosTable(w io.Writer, todos []model.Todo) error {
	if len(todos) == 0 {
		fmt.Fprintln(w, "No hay tareas")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNombre\tEstado\tCreada\tActualizada\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t\n")
	for _, t := range todos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			t.ID,
			truncate(t.Name, 40),
			status(t),
			t.CreatedAt,
			t.UpdatedAt,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTotal: %d\n", len(todos))
	return nil
}

func printTodosCSV(w io.Writer, todos []model.Todo) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "is_completed", "created_at", "updated_at"}); err != nil {
		return err
	}
	for _, t := range todos {
		row := []string{
			strconv.Itoa(t.ID),
			t.Name,
			strconv.FormatBool(t.IsCompleted),
			t.CreatedAt,
			t.UpdatedAt,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printTodoHuman(w io.Writer, t model.Todo) error {
	fmt.Fprintf(w, "ID:          %d\n", t.ID)
	fmt.Fprintf(w, "Nombre:      %s\n", t.Name)
	fmt.Fprintf(w, "Estado:      %s\n", status(t))
	fmt.Fprintf(w, "Creada:      %s\n", t.CreatedAt)
	fmt.Fprintf(w, "Actualizada: %s\n", t.UpdatedAt)
	return nil
}

func printTodo(w io.Writer, t model.Todo, asJSON bool) error {
	if asJSON {
		return printJSON(w, t)
	}
	return printTodoHuman(w, t)
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
