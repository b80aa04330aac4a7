// cmd/client/cmd/todo/create.go
package todo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todosync/internal/app/client"
)

var (
	createName      string
	createCompleted bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать задачу",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(createName)
		if name == "" {
			return errors.New("El nombre es requerido")
		}

		st, err := runIntent(cmd, func(vm *client.TodoViewModel) {
			vm.CreateTodo(name, createCompleted)
		})
		if err != nil {
			return err
		}

		return printUpsert(cmd.OutOrStdout(), st.UpsertResult, "Tarea creada de forma exitosa", wantJSON(cmd))
	},
}

// printUpsert печатает задачу из UpsertSuccess. Ошибки сюда не доходят:
// runIntent возвращает их раньше.
func printUpsert(w io.Writer, res client.UpsertResult, message string, asJSON bool) error {
	success, ok := res.(client.UpsertSuccess)
	if !ok {
		return fmt.Errorf("неожиданный результат операции: %v", res)
	}

	if asJSON {
		return printJSON(w, success.Todo)
	}
	fmt.Fprintln(w, color.GreenString("✔ %s", message))
	return printTodoHuman(w, success.Todo)
}

func init() {
	CreateCmd.Flags().StringVarP(&createName, "name", "n", "", "название задачи")
	CreateCmd.Flags().BoolVar(&createCompleted, "completed", false, "отметить задачу выполненной")
	_ = CreateCmd.MarkFlagRequired("name")
}
