// cmd/client/cmd/todo/get.go
package todo

import (
	"fmt"

	"github.com/spf13/cobra"

	"todosync/internal/app/client"
)

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть задачу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		st, err := runIntent(cmd, func(vm *client.TodoViewModel) { vm.GetTodoByID(id) })
		if err != nil {
			return err
		}
		if st.SelectedTodo == nil {
			return fmt.Errorf("задача %d не получена", id)
		}

		return printTodo(cmd.OutOrStdout(), *st.SelectedTodo, wantJSON(cmd))
	},
}
