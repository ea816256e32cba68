package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"subtrack/internal/money"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SUBTRACK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "EUR", cfg.UI.BaseCurrency)
	require.False(t, cfg.Premium.Enabled)
	require.Equal(t, 5, cfg.Premium.FreeLimit)

	rt, err := cfg.RateTable()
	require.NoError(t, err)
	require.InDelta(t, 1.0, rt[money.EUR], 1e-9)
	require.InDelta(t, 1.08, rt[money.USD], 1e-9)

	base, err := cfg.BaseCurrency()
	require.NoError(t, err)
	require.Equal(t, money.EUR, base)
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SUBTRACK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.BaseCurrency = "USD"
	cfg.UI.DarkMode = true
	cfg.Premium.Enabled = true
	require.NoError(t, Save(cfg))

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, "USD", loaded.UI.BaseCurrency)
	require.True(t, loaded.UI.DarkMode)
	require.True(t, loaded.Premium.Enabled)
}

func TestRateTableRejectsBadOverrides(t *testing.T) {
	t.Parallel()

	cfg := Config{Rates: map[string]float64{"sek": 11.2}}
	_, err := cfg.RateTable()
	require.Error(t, err)

	cfg = Config{Rates: map[string]float64{"usd": -1}}
	_, err = cfg.RateTable()
	require.Error(t, err)
}
