package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, ":3000", cfg.Addr)
	require.Equal(t, "your_secret_key", cfg.SecretKey)
	require.Equal(t, 2*time.Hour, cfg.TokenTTL)
	require.Equal(t, 3*time.Second, cfg.DBQueryTimeout)
	require.NotEmpty(t, cfg.DatabaseDSN)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDRESS", ":8080")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/lists")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("DB_QUERY_TIMEOUT", "5s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "postgres://u:p@db:5432/lists", cfg.DatabaseDSN)
	require.Equal(t, "supersecret", cfg.SecretKey)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
}

func TestParseEnv_PortShorthand(t *testing.T) {
	os.Unsetenv("ADDRESS")
	t.Setenv("PORT", "9090")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, ":9090", cfg.Addr)
}

func TestParseEnv_BadDurationKeepsDefault(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 2*time.Hour, cfg.TokenTTL)
}
