package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "gatherly", cfg.AppName)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "", cfg.JWTSecret)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.Equal(t, time.Hour, cfg.DBMaxConnLife)
	require.Equal(t, 50, cfg.RateLimitRPS)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_MAX_CONN_LIFETIME", "30m")
	t.Setenv("DEBUG_METRICS_ENABLED", "false")

	cfg := Load()

	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.DBMaxConnLife)
	require.False(t, cfg.DebugMetricsEnabled)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "dbhost", DBPort: "5433", DBUser: "app", DBPassword: "pw",
		DBName: "gatherly", DBSSLMode: "disable",
	}
	require.Equal(t, "postgres://app:pw@dbhost:5433/gatherly?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example , https://b.example ,"}
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
}
