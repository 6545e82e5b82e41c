package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the service.
type Config struct {
	Port          string
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// AdminSecret signs admin tokens. The default exists for local development
	// only; override it in any real deployment.
	AdminSecret   string
	AdminUsername string
	AdminPassword string
}

// Load reads .env (if present) and environment variables with defaults.
func Load() Config {
	if err := godotenv.Load(".env"); err == nil {
		slog.Info("Loaded configuration from .env")
	}

	return Config{
		Port:          getEnv("APP_PORT", "3001"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		AdminSecret:   getEnv("ADMIN_SECRET", "SECRET_KEY_ZZZ_2024"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
