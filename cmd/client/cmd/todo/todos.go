package todo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"todosync/internal/app/client"
)

// TodoCmd - родительская команда для всех операций с задачами
var TodoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Управление задачами",
	Long:  `Просмотр, создание, обновление и удаление задач на сервере.`,
}

func init() {
	TodoCmd.AddCommand(ListCmd, GetCmd, CreateCmd, UpdateCmd, DeleteCmd)
}

// runIntent выполняет одно намерение на отдельном view-model и
// возвращает состояние после его завершения.
func runIntent(cmd *cobra.Command, intent func(vm *client.TodoViewModel)) (client.State, error) {
	app, err := client.FromContext(cmd.Context())
	if err != nil {
		return client.State{}, err
	}

	vm := app.NewTodoViewModel(cmd.Context())
	defer vm.Close()

	intent(vm)
	vm.Wait()

	st := vm.Snapshot()
	if st.Error != nil {
		return st, errors.New(*st.Error)
	}
	return st, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("неверный ID задачи: %q", arg)
	}
	return id, nil
}

func wantJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}
