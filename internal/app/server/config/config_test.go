package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("DB_DRIVER", "")
	t.Setenv("RUN_ADDRESS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
}

func TestLoad_FromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DATABASE_URI", "file:todos.db")
	t.Setenv("RUN_ADDRESS", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "file:todos.db", cfg.DB.DatabaseURI)
	assert.Equal(t, ":9090", cfg.Server.RunAddress)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		uri     string
		wantErr bool
	}{
		{name: "memory without uri", driver: DriverMemory},
		{name: "sqlite with uri", driver: DriverSQLite, uri: ":memory:"},
		{name: "postgres without uri", driver: DriverPostgres, wantErr: true},
		{name: "unknown driver", driver: "mongo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				DB:     db{Driver: tt.driver, DatabaseURI: tt.uri},
				Server: server{RunAddress: ":8080"},
			}
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMustLoad_PanicsOnInvalid(t *testing.T) {
	viper.Reset()
	t.Setenv("DB_DRIVER", "mongo")

	assert.Panics(t, func() { MustLoad() })
}
