package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-retail/pkg/config"
)

// chdir is the Go 1.21-compatible equivalent of testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sample_retail.xlsx", cfg.Fixture.OutputPath)
	assert.Equal(t, "Sheet1", cfg.Fixture.SheetName)
	assert.Equal(t, "Asia/Seoul", cfg.Retail.Timezone)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10<<20, cfg.HTTP.UploadMaxBytes)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FIXTURE_OUTPUT_PATH", "out/retail.xlsx")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RETAIL_TIMEZONE", "UTC")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "out/retail.xlsx", cfg.Fixture.OutputPath)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	loc, err := cfg.Retail.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestRetailConfig_ZonaInvalida(t *testing.T) {
	loc, err := config.RetailConfig{Timezone: "Marte/Olympus"}.Location()
	assert.Error(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestLoad_HTTPInvalidoNoAfectaAlGenerador(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "sample_retail.xlsx", cfg.Fixture.OutputPath)

	assert.ErrorContains(t, cfg.ValidateServer(), "HTTP_PORT")
}

func TestValidateServer(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.ValidateServer(), "JWT_SECRET")

	cfg.JWT.Secret = "s3cr3t"
	assert.NoError(t, cfg.ValidateServer())
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "inventario-retail", cfg.JWT.Issuer)
}
