package cmd

import (
	"fmt"
	"os"

	"sensorlist/internal/app/client"
	"sensorlist/internal/app/client/config"
	"sensorlist/internal/utils/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/term"
)

var (
	cfgFile   string
	debug     bool
	serverURL string
	outFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sensorctl",
	Short: "sensorctl - клиент сервиса sensorlist",
	Long: `sensorctl работает с записями таблицы sensorlist через HTTP API:
список, просмотр, создание, обновление и удаление.

Адрес сервера берётся из --server, SENSORCTL_SERVER или config.yaml.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Ошибка:"), err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if outFormat != "" {
		cfg.Output = outFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if debug {
		log = logger.New(cfg.Env)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), client.New(cfg, log)))
	return nil
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера, например http://localhost:3000")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "", "формат вывода: text, table, json, yaml")

	// Команды будут добавлены в init() соответствующих файлов
}
