package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string
	SQLitePath     string
	JWTSecret      string
	Environment    string
	ServerURL      string
}

func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

// Load reads the environment into an immutable Config. A .env file is
// loaded first when present, real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           envOr("PORT", "5000"),
		DatabaseDriver: envOr("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     envOr("DATABASE_PATH", "database.db"),
		JWTSecret:      envOr("JWT_SECRET", "development-secret"),
		Environment:    envOr("APP_ENV", "development"),
		ServerURL:      envOr("SERVER_URL", "http://localhost:5000"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
