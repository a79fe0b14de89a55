package record

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var updateSets []string

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Обновить запись",
	Long: `Перезаписывает атрибуты записи и печатает сохранённую строку:
  sensorctl record update 1 --set name=renamed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		attrs, err := parseSets(updateSets)
		if err != nil {
			return err
		}
		if len(attrs) == 0 {
			return errors.New("нужен хотя бы один флаг --set")
		}

		rec, err := app.UpdateRecord(cmd.Context(), id, attrs)
		if err != nil {
			return fmt.Errorf("ошибка обновления записи: %w", err)
		}

		return printer(cmd, app).Record(*rec)
	},
}

func init() {
	UpdateCmd.Flags().StringArrayVarP(&updateSets, "set", "s", nil, "значение колонки, поле=значение")
}
