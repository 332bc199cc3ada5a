package config_test

import (
	"testing"
	"time"

	"todoapi/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "localhost:3000", cfg.Addr())
	assert.Equal(t, "./database.sqlite", cfg.DatabasePath)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.False(t, cfg.LogSQL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DATABASE_PATH", "/tmp/test.sqlite")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LOG_SQL", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "/tmp/test.sqlite", cfg.DatabasePath)
	assert.True(t, cfg.LogSQL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid APP_TIMEZONE")
}
