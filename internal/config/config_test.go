package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STOREFRONT_SESSION_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Zero(t, cfg.Session.TokenTTL)
	assert.False(t, cfg.HTTP.TrustProxy)
	assert.Equal(t, 100, cfg.Catalog.PriceStep)
	assert.Equal(t, 0, cfg.Catalog.PriceCeiling)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, 5, cfg.Ban.Strikes)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	content := `
http:
  addr: ":9090"
  trust_proxy: true
session:
  secret: from-file
  ttl: 10m
catalog:
  price_ceiling: 15000
redis:
  addr: "redis:6379"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("STOREFRONT_HTTP_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.True(t, cfg.HTTP.TrustProxy)
	assert.Equal(t, "from-file", cfg.Session.Secret)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 15000, cfg.Catalog.PriceCeiling)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_RequiresSecret(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load("")
	assert.EqualError(t, err, "session.secret is required")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Session:   SessionConfig{Secret: "x"},
		Catalog:   CatalogConfig{PriceStep: 100},
		RateLimit: RateLimitConfig{RPS: 1, Burst: 1},
		Ban:       BanConfig{Strikes: 1, Window: time.Minute, Duration: time.Minute},
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"step":        func(c *Config) { c.Catalog.PriceStep = 0 },
		"ceiling":     func(c *Config) { c.Catalog.PriceCeiling = -1 },
		"rps":         func(c *Config) { c.RateLimit.RPS = 0 },
		"burst":       func(c *Config) { c.RateLimit.Burst = 0 },
		"strikes":     func(c *Config) { c.Ban.Strikes = 0 },
		"window":      func(c *Config) { c.Ban.Window = 0 },
		"duration":    func(c *Config) { c.Ban.Duration = -time.Minute },
		"session ttl": func(c *Config) { c.Session.TTL = -time.Minute },
		"token ttl":   func(c *Config) { c.Session.TokenTTL = -time.Minute },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
