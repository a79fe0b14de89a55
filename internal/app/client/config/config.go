package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "http://localhost:3000"
	defaultEnv           = "local"
	defaultOutput        = "text"
	defaultTimeout       = 10 * time.Second
	defaultConfigDir     = ".sensorctl"
	envPrefix            = "SENSORCTL"
)

var Outputs = []string{"text", "table", "json", "yaml"}

type Config struct {
	Env           string        `mapstructure:"app_env"`
	ServerAddress string        `mapstructure:"server"`
	Output        string        `mapstructure:"output"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Load читает конфиг клиента: файл (yaml), затем SENSORCTL_* из окружения.
// Пустой cfgFile - поиск config.yaml в ~/.sensorctl и текущей директории.
func Load(cfgFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server", defaultServerAddress)
	v.SetDefault("output", defaultOutput)
	v.SetDefault("timeout", defaultTimeout)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, defaultConfigDir))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("чтение конфигурации: %w", err)
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	cfg := &Config{
		Env:           v.GetString("app_env"),
		ServerAddress: v.GetString("server"),
		Output:        v.GetString("output"),
		Timeout:       v.GetDuration("timeout"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerAddress)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("адрес сервера должен быть http(s) URL, получено %q", c.ServerAddress)
	}
	if !IsOutput(c.Output) {
		return fmt.Errorf("неизвестный формат вывода %q, допустимо: %s", c.Output, strings.Join(Outputs, ", "))
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout должен быть положительным, получено %s", c.Timeout)
	}
	return nil
}

func IsOutput(s string) bool {
	for _, o := range Outputs {
		if o == s {
			return true
		}
	}
	return false
}
