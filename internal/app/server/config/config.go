package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = "../../.env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
}

type db struct {
	Driver      string `env:"DB_DRIVER" envDefault:"memory"`
	DatabaseURI string `env:"DATABASE_URI"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:":8080"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load читает .env (если он есть) и окружение.
func Load() (*Config, error) {
	for _, path := range []string{".env", envPath} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
			}
			break
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("db_driver", DriverMemory)
	viper.SetDefault("log_level", "info")

	config := &Config{
		Env: viper.GetString("app_env"),
		DB: db{
			Driver:      viper.GetString("db_driver"),
			DatabaseURI: viper.GetString("database_uri"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad - Load с паникой на ошибке, для старта сервера.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI обязателен для драйвера %s", c.DB.Driver)
		}
	default:
		return fmt.Errorf("неизвестный DB_DRIVER %q", c.DB.Driver)
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("RUN_ADDRESS не может быть пустым")
	}
	return nil
}
