package record

import (
	"fmt"

	"github.com/spf13/cobra"
)

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		rec, err := app.GetRecord(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		return printer(cmd, app).Record(*rec)
	},
}
