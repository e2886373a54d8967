package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.DB.UsesPostgres())
	assert.Equal(t, "./precios.db", cfg.DB.SQLitePath)
}

func TestLoad_PuertoDesdeEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

// Un HTTP_PORT ilegible cae en el default, no en el puerto 0.
func TestLoad_PuertoNoNumericoUsaElDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "ochenta")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestDBConfig_PostgresCorrigeElEsquema(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://user:pw@host:5432/db"}
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "postgresql://user:pw@host:5432/db", cfg.ConnectionString())
}

func TestDBConfig_SinURLUsaSQLite(t *testing.T) {
	cfg := config.DBConfig{SQLitePath: "./datos.db"}
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, "./datos.db", cfg.ConnectionString())
}
