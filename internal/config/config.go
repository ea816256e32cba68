// Package config loads and saves application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"subtrack/internal/money"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Rates    map[string]float64
	Premium  PremiumConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	BaseCurrency string `mapstructure:"base_currency"`
	DarkMode     bool   `mapstructure:"dark_mode"`
	DateFormat   string `mapstructure:"date_format"`
}

// PremiumConfig holds the entitlement state and the free-tier limit.
type PremiumConfig struct {
	Enabled   bool
	FreeLimit int `mapstructure:"free_limit"`
}

// Load reads configuration from file and env. Env var overrides use prefix SUBTRACK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "subtrack", "subtrack.db"))
	v.SetDefault("ui.base_currency", "EUR")
	v.SetDefault("ui.dark_mode", false)
	v.SetDefault("ui.date_format", "02/01")
	v.SetDefault("rates.eur", 1.0)
	v.SetDefault("rates.usd", 1.08)
	v.SetDefault("rates.gbp", 0.85)
	v.SetDefault("rates.chf", 0.95)
	v.SetDefault("premium.enabled", false)
	v.SetDefault("premium.free_limit", 5)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SUBTRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "subtrack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SUBTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. Used by the TUI settings view for preferences changed at
// runtime (base currency, theme, premium toggle).
func Save(cfg Config) error {
	path := os.Getenv("SUBTRACK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "subtrack", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.base_currency", cfg.UI.BaseCurrency)
	v.Set("ui.dark_mode", cfg.UI.DarkMode)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	for code, rate := range cfg.Rates {
		v.Set("rates."+strings.ToLower(code), rate)
	}
	v.Set("premium.enabled", cfg.Premium.Enabled)
	v.Set("premium.free_limit", cfg.Premium.FreeLimit)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// RateTable converts the configured rate overrides into a validated
// table. Unknown codes or non-positive factors are rejected.
func (c Config) RateTable() (money.RateTable, error) {
	rt := money.RateTable{}
	for code, rate := range c.Rates {
		cur, err := money.ParseCurrency(code)
		if err != nil {
			return nil, err
		}
		rt[cur] = rate
	}
	if err := rt.Validate(); err != nil {
		return nil, err
	}
	return rt, nil
}

// BaseCurrency parses the configured base currency.
func (c Config) BaseCurrency() (money.Currency, error) {
	return money.ParseCurrency(c.UI.BaseCurrency)
}
