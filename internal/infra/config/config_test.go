package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "2012-12-21", cfg.Maya.AnchorDate)
	require.Equal(t, 260, cfg.Maya.AnchorKin)
	require.Equal(t, 6, cfg.History.Capacity)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
http:
  address: ":9090"
  allowedOrigins: ["https://example.com"]
maya:
  anchorDate: "2025-09-23"
  anchorKin: 183
cache:
  ttl: 1h
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HISTORY_CAPACITY", "10")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.test, https://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "2025-09-23", cfg.Maya.AnchorDate)
	require.Equal(t, 183, cfg.Maya.AnchorKin)
	require.Equal(t, time.Hour, cfg.Cache.TTL)
	require.Equal(t, 10, cfg.History.Capacity)
	require.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 7, cfg.Biorhythm.ForecastDays)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":   func(c *Config) { c.HTTP.Address = "" },
		"bad anchor date": func(c *Config) { c.Maya.AnchorDate = "2012-13-01" },
		"anchor kin zero": func(c *Config) { c.Maya.AnchorKin = 0 },
		"anchor kin high": func(c *Config) { c.Maya.AnchorKin = 261 },
		"history":         func(c *Config) { c.History.Capacity = 0 },
		"cache addr":      func(c *Config) { c.Cache.Enabled = true; c.Cache.Addr = " " },
		"cache capacity":  func(c *Config) { c.Cache.Capacity = 0 },
		"timezone":        func(c *Config) { c.App.Timezone = "Mars/Olympus" },
		"rate limit":      func(c *Config) { c.HTTP.RateLimit.Burst = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
