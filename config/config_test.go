package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Token.Expiry)
	assert.Equal(t, 8.0, cfg.Yield.APY)
	assert.Equal(t, 5*time.Minute, cfg.Yield.CacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.Payment.AllocationTTL)
	assert.Equal(t, 10*time.Minute, cfg.Payment.NonceTTL)
	assert.Equal(t, "USDC", cfg.Payment.Asset)
	assert.Equal(t, time.Minute, cfg.Sweep.Interval)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
yield:
  apy: 12.5
  cache_ttl: 90s
payment:
  treasury: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
  allocation_ttl: 2m
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 12.5, cfg.Yield.APY)
	assert.Equal(t, 90*time.Second, cfg.Yield.CacheTTL)
	assert.Equal(t, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", cfg.Payment.Treasury)
	assert.Equal(t, 2*time.Minute, cfg.Payment.AllocationTTL)
	// Untouched keys keep defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("YSG_SERVER_PORT", "7070")
	t.Setenv("YSG_TOKEN_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Token.Secret)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p",
		DBName: "yield_gateway", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5433/yield_gateway?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
