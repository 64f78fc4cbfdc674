package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "SERVICE_NAME", "LOG_LEVEL", "CORS_ORIGINS", "TLS_CERT", "TLS_KEY", "OTEL_HOST", "OTEL_PROBABILITY", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "mealflow", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.TLS())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.OTEL.Host)
	assert.Equal(t, 1.0, cfg.OTEL.Probability)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("TLS_CERT", "certs/server.crt")
	t.Setenv("TLS_KEY", "certs/server.key")
	t.Setenv("OTEL_HOST", "collector:4317")
	t.Setenv("OTEL_PROBABILITY", "0.25")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.TLS())
	assert.Equal(t, "collector:4317", cfg.OTEL.Host)
	assert.Equal(t, 0.25, cfg.OTEL.Probability)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "probability not a number", key: "OTEL_PROBABILITY", value: "often"},
		{name: "probability out of range", key: "OTEL_PROBABILITY", value: "1.5"},
		{name: "bad duration", key: "SHUTDOWN_TIMEOUT", value: "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
