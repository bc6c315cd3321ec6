package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	DBPath         string
	OutputDir      string
	MaxUploadBytes int64

	// Cleaning behaviour.
	ImputeStrategy    string  // "mean" or "zero"
	CoercionTolerance float64 // max share of unparseable amount cells

	// Optional PostgreSQL export sink. Empty disables it.
	PostgresDSN string
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DBPath:         getEnv("DB_PATH", "salesboard.db"),
		OutputDir:      getEnv("OUTPUT_DIR", "./exports"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 32<<20),

		ImputeStrategy:    getEnv("IMPUTE_STRATEGY", "mean"),
		CoercionTolerance: getEnvFloat("COERCION_TOLERANCE", 0.5),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
