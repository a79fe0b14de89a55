package record

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long:  `Все записи таблицы по возрастанию id.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		records, err := app.ListRecords(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		return printer(cmd, app).Records(records)
	},
}
