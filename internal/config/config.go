// Package config loads process configuration from the environment. It never
// persists anything — the only state the process owns is whatever catalog
// package builds from Config.Data.DataDir.
package config

import (
	"strconv"

	"corrosionengine/internal/apperr"
	"os"

	"github.com/joho/godotenv"
)

// Config is the complete runtime configuration for a corrosion-engine process.
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
}

// ServerConfig holds the tool-dispatch HTTP server settings.
type ServerConfig struct {
	Port    string `validate:"required"`
	GinMode string
	DebugPort string // chi debug mux (healthz, readyz)
}

// DataConfig points at the on-disk catalog data directory and any optional
// external chemistry oracle (PHREEQC) endpoint.
type DataConfig struct {
	DataDir         string `validate:"required"`
	PHREEQCEndpoint string
}

// LogConfig controls the leveled logger.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it.
// A .env file in the working directory is loaded first, if present; its
// absence is not an error, since production deploys set real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: loadServerConfig(),
		Data:   loadDataConfig(),
		Log:    loadLogConfig(),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, apperr.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:      getEnvOrDefault("PORT", "8080"),
		GinMode:   getEnvOrDefault("GIN_MODE", "release"),
		DebugPort: getEnvOrDefault("DEBUG_PORT", "6060"),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		DataDir:         getEnvOrDefault("CORROSION_DATA_DIR", "./data"),
		PHREEQCEndpoint: getEnvOrDefault("PHREEQC_ENDPOINT", ""),
	}
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Data.DataDir == "" {
		return apperr.ConfigInvalid("CORROSION_DATA_DIR is required")
	}
	if cfg.Server.Port == "" {
		return apperr.ConfigInvalid("PORT is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
