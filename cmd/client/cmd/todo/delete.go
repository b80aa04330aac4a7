// cmd/client/cmd/todo/delete.go
package todo

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todosync/internal/app/client"
)

// DeleteCmd идет напрямую в репозиторий: у view-model нет намерения удаления.
var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить задачу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res := app.Repository().DeleteTodo(cmd.Context(), id)
		if err := res.Err(); err != nil {
			return errors.New(res.Message())
		}

		deleted, _ := res.Data()
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), deleted)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✔ Tarea %d eliminada", id))
		return nil
	},
}
