package cmd

import (
	"fmt"

	"sensorlist/cmd/client/cmd/record"
	"sensorlist/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить соединение с сервером",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			return fmt.Errorf("сервер %s недоступен: %w", app.Config().ServerAddress, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("✓"), app.Config().ServerAddress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)

	// Добавляем команды работы с записями
	rootCmd.AddCommand(record.RecordCmd)
	record.RecordCmd.AddCommand(record.ListCmd)
	record.RecordCmd.AddCommand(record.GetCmd)
	record.RecordCmd.AddCommand(record.CreateCmd)
	record.RecordCmd.AddCommand(record.UpdateCmd)
	record.RecordCmd.AddCommand(record.DeleteCmd)
}
