package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPostgresRequiresPassword(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendPostgres)
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, cfgErr.Missing, "DB_PASSWORD")
}

func TestLoadPostgres(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendPostgres)
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "host=db.internal port=5433 user=postgres password=secret dbname=homecare sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadMemoryBackendNeedsNoCredentials(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendMemory)
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.StoreBackend)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")

	_, err := Load()
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.False(t, errors.As(err, &cfgErr))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendMemory)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}
