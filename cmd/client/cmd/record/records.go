package record

import (
	"fmt"
	"strconv"
	"strings"

	"sensorlist/cmd/client/cmd/output"
	"sensorlist/internal/app/client"
	"sensorlist/internal/domain/record"

	"github.com/spf13/cobra"
)

// RecordCmd - родительская команда для всех операций с записями
var RecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Управление записями",
	Long:  `Создание, просмотр, обновление и удаление записей таблицы на сервере.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	return client.FromContext(cmd.Context())
}

func printer(cmd *cobra.Command, app *client.App) *output.Printer {
	return output.New(cmd.OutOrStdout(), app.Config().Output)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("неверный ID записи %q: %w", s, err)
	}
	return id, nil
}

// parseSets разбирает флаги --set name=value.
func parseSets(sets []string) (record.Attributes, error) {
	attrs := make(record.Attributes, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("ожидается поле=значение, получено %q", s)
		}
		if k == record.IDColumn {
			return nil, fmt.Errorf("id задаётся флагом --id или аргументом")
		}
		if _, dup := attrs[k]; dup {
			return nil, fmt.Errorf("поле %q указано дважды", k)
		}
		attrs[k] = v
	}
	return attrs, nil
}
