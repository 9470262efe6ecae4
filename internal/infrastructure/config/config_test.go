package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruival/obracap/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://example", cfg.DatabaseURL)
	assert.Equal(t, "redis://example", cfg.RedisURL)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 45*time.Second, cfg.DatabaseTimeout)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, float64(10), cfg.RateLimitRPS)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	_, err := config.Load()
	require.Error(t, err)
}
