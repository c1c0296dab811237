package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	AppPort   string
	AppEnv    string
	JWTSecret string
}

// LoadConfig reads configuration from the environment, optionally seeded
// from a local .env file. The store path defaults to bookstore.db next to
// the binary, same as the desktop app it backs.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:    getEnv("DB_PATH", "bookstore.db"),
		AppPort:   getEnv("APP_PORT", "8080"),
		AppEnv:    getEnv("APP_ENV", "development"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
