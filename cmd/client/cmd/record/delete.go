package record

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить запись",
	Long:  `Удаляет запись. В интерактивном терминале без --yes спрашивает подтверждение.`,
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

		if !deleteYes && term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintf(cmd.OutOrStdout(), "Удалить запись %d? [y/N]: ", id)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Отменено")
				return nil
			}
		}

		if err := app.DeleteRecord(cmd.Context(), id); err != nil {
			return fmt.Errorf("ошибка удаления записи: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Запись %d удалена\n", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
