package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "https://usil-todo-api.vercel.app/api/"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultRequestTimeout = 30
	defaultUserAgent      = "TodoSync-Client/1.0"
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ServerAddress  string        `mapstructure:"server_address"`
	LogLevel       string        `mapstructure:"log_level"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// Load загружает конфигурацию клиента из .env, окружения и (если он прочитан
// в глобальный viper) конфигурационного файла.
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	viper.SetDefault("USER_AGENT", defaultUserAgent)

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		UserAgent:      viper.GetString("USER_AGENT"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return config, nil
}

// MustLoad - как Load, но паникует на ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	u, err := url.Parse(c.ServerAddress)
	if err != nil {
		return fmt.Errorf("server_address: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server_address должен начинаться с http:// или https://, получено %q", c.ServerAddress)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout_seconds не может быть отрицательным")
	}
	return nil
}

// BaseURL возвращает адрес API с завершающим слешем, чтобы пути
// "todos" и "todos/{id}" разрешались относительно него.
func (c *Config) BaseURL() string {
	if strings.HasSuffix(c.ServerAddress, "/") {
		return c.ServerAddress
	}
	return c.ServerAddress + "/"
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
