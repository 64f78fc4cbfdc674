// Package config loads service settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings.
type Config struct {
	Addr            string
	ServiceName     string
	LogLevel        string
	CORSOrigins     []string
	TLSCert         string
	TLSKey          string
	ShutdownTimeout time.Duration
	OTEL            OTELConfig
}

// OTELConfig holds the tracing settings.
type OTELConfig struct {
	Host        string
	Probability float64
}

// TLS reports whether both certificate and key are configured.
func (c *Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads the configuration. Variables already set in the environment win
// over values from .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	probability, err := strconv.ParseFloat(getEnv("OTEL_PROBABILITY", "1.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("parse OTEL_PROBABILITY: %w", err)
	}
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("OTEL_PROBABILITY must be within [0,1], got %v", probability)
	}

	shutdown, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		Addr:            getEnv("ADDR", ":8080"),
		ServiceName:     getEnv("SERVICE_NAME", "mealflow"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     parseCSV(getEnv("CORS_ORIGINS", "*")),
		TLSCert:         os.Getenv("TLS_CERT"),
		TLSKey:          os.Getenv("TLS_KEY"),
		ShutdownTimeout: shutdown,
		OTEL: OTELConfig{
			Host:        os.Getenv("OTEL_HOST"),
			Probability: probability,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
