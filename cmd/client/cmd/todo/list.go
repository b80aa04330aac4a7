// cmd/client/cmd/todo/list.go
package todo

import (
	"github.com/spf13/cobra"

	"todosync/internal/app/client"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список задач",
	Long:  `Загружает все задачи с сервера и печатает их в выбранном формате.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := runIntent(cmd, (*client.TodoViewModel).GetTodos)
		if err != nil {
			return err
		}

		format := listFormat
		if wantJSON(cmd) {
			format = "json"
		}

		w := cmd.OutOrStdout()
		switch format {
		case "json":
			return printJSON(w, st.Todos)
		case "table":
			return printTodosTable(w, st.Todos)
		case "csv":
			return printTodosCSV(w, st.Todos)
		default:
			return printTodosSimple(w, st.Todos)
		}
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json, csv)")
}
