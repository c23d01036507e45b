package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "movies", cfg.Database.Name)
	assert.Equal(t, 20, cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.Timeout)
	assert.Equal(t, 5, cfg.Database.ConnectRetries)
	assert.Equal(t, 20.0, cfg.Security.RateLimit)
	assert.Equal(t, 40, cfg.Security.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.MaxSize)
	assert.False(t, cfg.Observability.TracingEnabled)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.False(t, cfg.OpenAPI.Validation)
	assert.False(t, cfg.WriteGuardEnabled())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PORT":               "9000",
		"APP_ENV":            "production",
		"DB_HOST":            "db.internal",
		"DB_TIMEOUT":         "2s",
		"ALLOWED_ORIGINS":    "https://a.example,https://b.example",
		"WRITE_TOKEN_SECRET": "s3cret",
		"CACHE_ENABLED":      "false",
		"REDIS_URL":          "redis://localhost:6379/0",
		"LOG_FORMAT":         "text",
	})
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2*time.Second, cfg.Database.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
	assert.True(t, cfg.WriteGuardEnabled())
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.True(t, strings.Contains(cfg.DSN(), "host=db.internal"))
}

func TestLoadFromRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unparsable duration", map[string]string{"DB_TIMEOUT": "soon"}},
		{"zero pool", map[string]string{"DB_MAX_CONNS": "0"}},
		{"negative rate", map[string]string{"RATE_LIMIT": "-1"}},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"vault without address", map[string]string{"VAULT_ENABLED": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.env)
			assert.Error(t, err)
		})
	}
}
