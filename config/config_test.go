package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.App.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Source.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Empty(t, cfg.Auth.Secret)
}

func TestLoadConfig_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_SOURCE_URL", "http://source.internal:9000")
	t.Setenv("API_SOURCE_TIMEOUT", "3s")
	t.Setenv("DB_NAME", "bd2")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://source.internal:9000", cfg.Source.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "bd2", cfg.DB.Name)
	assert.True(t, cfg.Redis.Enabled)
}
