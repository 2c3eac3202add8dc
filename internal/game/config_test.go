package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davezimmer/floortrader/internal/market"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
total_days: 30
starting_capital: 5000
seed: 42
stocks:
  - name: Acme
    price: 100
  - name: Initech
    price: 250
storage:
  dsn: results.db
log:
  level: warn
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TotalDays)
	assert.Equal(t, 5000.0, cfg.StartingCapital)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "results.db", cfg.Storage.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	stocks := cfg.Catalog()
	require.Len(t, stocks, 2)
	assert.Equal(t, market.Symbol("Acme"), stocks[0].Symbol)
	assert.Equal(t, 100.0, stocks[0].InitialPrice)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `seed: 7`))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.TotalDays, cfg.TotalDays)
	assert.Equal(t, def.StartingCapital, cfg.StartingCapital)
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
	assert.Equal(t, def.Log.Format, cfg.Log.Format)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(writeConfig(t, `log: {level: info, format: text}`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "total_days: [oops"))
	require.Error(t, err)
}

func TestCatalogFallback(t *testing.T) {
	assert.Equal(t, market.DefaultStocks(), DefaultConfig().Catalog())
}
