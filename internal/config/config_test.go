package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "ENABLE_REDIS", "REDIS_URL", "CACHE_TTL_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, EnvDevelopment, cfg.Env)
	require.False(t, cfg.EnableRedis)
	require.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	require.Equal(t, time.Hour, cfg.CacheTTL)
	require.Equal(t, "memory", cfg.UserStore)
	require.False(t, cfg.AuthEnabled)
	require.False(t, cfg.Production())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ENABLE_REDIS", "true")
	t.Setenv("REDIS_URL", "redis://cache.internal:6380/2")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("USER_STORE", "sqlite")

	cfg := Load()
	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.Production())
	require.True(t, cfg.EnableRedis)
	require.Equal(t, "redis://cache.internal:6380/2", cfg.RedisURL)
	require.Equal(t, time.Minute, cfg.CacheTTL)
	require.Equal(t, "sqlite", cfg.UserStore)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("ENABLE_REDIS", "yes please")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "-5")

	cfg := Load()
	require.Equal(t, 4000, cfg.Port)
	require.False(t, cfg.EnableRedis)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
