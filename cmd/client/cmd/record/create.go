package record

import (
	"fmt"

	"sensorlist/internal/domain/record"

	"github.com/spf13/cobra"
)

var (
	createID   int
	createSets []string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать запись",
	Long: `Создание записи с заданным id.

Атрибуты передаются флагами --set, по одному на колонку:
  sensorctl record create --id 1 --set name=temp-sensor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		attrs, err := parseSets(createSets)
		if err != nil {
			return err
		}

		rec, err := app.CreateRecord(cmd.Context(), record.Record{ID: createID, Attributes: attrs})
		if err != nil {
			return fmt.Errorf("ошибка создания записи: %w", err)
		}

		return printer(cmd, app).Record(*rec)
	},
}

func init() {
	CreateCmd.Flags().IntVar(&createID, "id", 0, "ID новой записи")
	CreateCmd.Flags().StringArrayVarP(&createSets, "set", "s", nil, "значение колонки, поле=значение")
	_ = CreateCmd.MarkFlagRequired("id")
}
