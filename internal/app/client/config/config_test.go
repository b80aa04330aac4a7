package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultServerAddress, cfg.ServerAddress)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, defaultUserAgent, cfg.UserAgent)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_FromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SERVER_ADDRESS", "http://localhost:8080/api")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.ServerAddress)
	assert.Equal(t, "http://localhost:8080/api/", cfg.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.IsProd())
	assert.False(t, cfg.IsDev())
}

func TestLoad_InvalidAddress(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SERVER_ADDRESS", "localhost:8080")

	_, err := Load()
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad() })
}

func TestConfig_validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{ServerAddress: "https://example.com/api/"}},
		{name: "empty address", cfg: Config{}, wantErr: true},
		{name: "no scheme", cfg: Config{ServerAddress: "example.com"}, wantErr: true},
		{name: "negative timeout", cfg: Config{ServerAddress: "http://x", RequestTimeout: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
