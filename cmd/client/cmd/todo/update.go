// cmd/client/cmd/todo/update.go
package todo

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"todosync/internal/app/client"
)

var (
	updateName      string
	updateCompleted bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Обновить задачу",
	Long: `Заменяет название и статус задачи.

Оба поля отправляются целиком: без --completed задача станет невыполненной.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		name := strings.TrimSpace(updateName)
		if name == "" {
			return errors.New("El nombre es requerido")
		}

		st, err := runIntent(cmd, func(vm *client.TodoViewModel) {
			vm.UpdateTodo(name, updateCompleted, id)
		})
		if err != nil {
			return err
		}

		return printUpsert(cmd.OutOrStdout(), st.UpsertResult, "Tarea actualizada de forma exitosa", wantJSON(cmd))
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateName, "name", "n", "", "название задачи")
	UpdateCmd.Flags().BoolVar(&updateCompleted, "completed", false, "отметить задачу выполненной")
	_ = UpdateCmd.MarkFlagRequired("name")
}
