// Package config holds the environment-driven configuration for the exa
// CLI. The library itself resolves only the API key; everything else here
// (log level, metrics listener, timeouts) belongs to the application.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Exa     ExaConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type ExaConfig struct {
	// APIKey may stay empty: exa.New falls back to EXA_API_KEY itself
	// and fails with a typed error when both are absent.
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	// Addr enables the Prometheus listener when non-empty.
	Addr string
}

func Load() *Config {
	return &Config{
		Exa: ExaConfig{
			APIKey:  os.Getenv("EXA_API_KEY"),
			BaseURL: os.Getenv("EXA_BASE_URL"),
			Timeout: time.Duration(getEnvIntOrDefault("EXA_TIMEOUT_SEC", 30)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Addr: os.Getenv("METRICS_ADDR"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
