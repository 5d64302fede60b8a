package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMasterSecret = "0123456789abcdef-test"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("UCENTER_MASTER_SECRET", testMasterSecret)

	cfg, err := Load("server", nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "ucenter.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 24*time.Hour, cfg.AppTokenTTL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.InDelta(t, 50.0, cfg.RateLimit, 0.001)
	assert.Equal(t, 100, cfg.RateBurst)
	assert.False(t, cfg.TrustProxy)
	assert.False(t, cfg.ShowVersion)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("UCENTER_MASTER_SECRET", testMasterSecret)
	t.Setenv("UCENTER_ADDR", ":9000")
	t.Setenv("UCENTER_STORAGE", "bolt")
	t.Setenv("UCENTER_DB_PATH", "from-env.db")
	t.Setenv("UCENTER_APP_TOKEN_TTL", "1h")
	t.Setenv("UCENTER_TRUST_PROXY", "true")

	cfg, err := Load("server", []string{"-db", "from-flag.db", "-storage", "sqlite"}, io.Discard)
	require.NoError(t, err)

	// Флаги важнее переменных окружения
	assert.Equal(t, "from-flag.db", cfg.DBPath)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	// Не заданный флаг не затирает значение из окружения
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.AppTokenTTL)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("UCENTER_MASTER_SECRET", testMasterSecret)
	t.Cleanup(func() {
		_ = os.Unsetenv("UCENTER_LOG_FORMAT")
	})

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("UCENTER_LOG_FORMAT=json\n"), 0o600))

	cfg, err := Load("server", []string{"-env-file", envFile}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Setenv("UCENTER_MASTER_SECRET", testMasterSecret)

	_, err := Load("server", []string{"-env-file", filepath.Join(t.TempDir(), "missing.env")}, io.Discard)
	assert.Error(t, err)
}

func TestLoad_Version(t *testing.T) {
	// Для вывода версии остальная конфигурация не нужна
	cfg, err := Load("server", []string{"-version"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestLoad_Help(t *testing.T) {
	_, err := Load("server", []string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestLoad_MissingMasterSecret(t *testing.T) {
	t.Setenv("UCENTER_MASTER_SECRET", "")

	_, err := Load("server", nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UCENTER_MASTER_SECRET")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Addr:            ":8080",
			Storage:         StorageBolt,
			DBPath:          "ucenter.db",
			MasterSecret:    testMasterSecret,
			LogLevel:        "debug",
			LogFormat:       "json",
			AppTokenTTL:     time.Hour,
			RequestTimeout:  time.Second,
			ShutdownTimeout: time.Second,
			RateLimit:       1,
			RateBurst:       1,
		}
	}

	tests := []struct {
		modify  func(c *Config)
		name    string
		wantErr bool
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "unknown storage", modify: func(c *Config) { c.Storage = "postgres" }, wantErr: true},
		{name: "empty db path", modify: func(c *Config) { c.DBPath = "" }, wantErr: true},
		{name: "short master secret", modify: func(c *Config) { c.MasterSecret = "short" }, wantErr: true},
		{name: "unknown log level", modify: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
		{name: "unknown log format", modify: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "zero token ttl", modify: func(c *Config) { c.AppTokenTTL = 0 }, wantErr: true},
		{name: "zero burst", modify: func(c *Config) { c.RateBurst = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
