package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings for the core services.
type Config struct {
	DatabaseConnStr string
	LogLevel        string
}

// Load reads configuration from a .env file (if present) and the
// environment. DB_CONN_STR wins when set; otherwise the connection string
// is assembled from the individual DB_* variables with local-development
// defaults.
func Load() Config {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseConnStr: os.Getenv("DB_CONN_STR"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseConnStr == "" {
		cfg.DatabaseConnStr = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_USER", "postgres"),
			getenv("DB_PASSWORD", "postgres"),
			getenv("DB_NAME", "hotelops"),
		)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
