package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, BackendSQL, cfg.StoreBackend)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 1000, cfg.ListLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("TOKEN_TTL", "5m")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			StoreBackend: BackendSQL,
			DBDriver:     DriverSQLite,
			JWTSecret:    "s3cret",
			TokenTTL:     time.Minute,
			BcryptCost:   10,
			ListLimit:    1000,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "cassandra" }},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
		{"limit too large", func(c *Config) { c.ListLimit = MaxListLimit + 1 }},
		{"limit zero", func(c *Config) { c.ListLimit = 0 }},
		{"cost too low", func(c *Config) { c.BcryptCost = 1 }},
		{"blank secret", func(c *Config) { c.JWTSecret = "   " }},
	}

	ok := base()
	require.NoError(t, ok.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
