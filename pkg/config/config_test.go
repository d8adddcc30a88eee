package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "METRICS_PORT", "TRIGGER_JWT_SECRET", "SEND_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "8080", cfg.Port)
		require.Equal(t, "development", cfg.Env)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "9090", cfg.MetricsPort)
		require.Empty(t, cfg.TriggerJWTSecret)
		require.Equal(t, 10*time.Second, cfg.SendTimeout)
		require.False(t, cfg.IsProduction())
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("ENV", "production")
		t.Setenv("SEND_TIMEOUT", "2s")
		t.Setenv("TRIGGER_JWT_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "3000", cfg.Port)
		require.True(t, cfg.IsProduction())
		require.Equal(t, 2*time.Second, cfg.SendTimeout)
		require.Equal(t, "s3cret", cfg.TriggerJWTSecret)
	})

	t.Run("InvalidDuration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
	})
}
