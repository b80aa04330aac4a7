package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"todosync/internal/app/client"
	"todosync/internal/app/client/tui"
	"todosync/internal/utils/logger"
)

const debugLogFile = "todosync-debug.log"

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Интерактивный список задач",
	Long: `Открывает экран со списком задач и формой создания и редактирования.

Список обновляется при возврате в окно терминала и после закрытия формы,
если в нем уже есть задачи. С флагом --debug журнал пишется в ` + debugLogFile + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("tui требует терминал, используйте команды todo")
		}

		// stdout занят экраном, поэтому журнал в файл или никуда
		tuiLog := logger.Discard()
		if debug {
			f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("ошибка открытия журнала: %w", err)
			}
			defer f.Close()
			tuiLog = logger.NewWithWriter("dev", f)
		}

		tuiApp, err := client.New(cfg, tuiLog)
		if err != nil {
			return fmt.Errorf("ошибка инициализации приложения: %w", err)
		}

		return tui.Run(cmd.Context(), tuiApp, tuiLog)
	},
}
