package config

import (
	"os"

	"github.com/joho/godotenv"
)

var defaults = map[string]string{
	"DB_PATH": "flights.db",
	"PORT":    "8002",
	"SEED":    "true",
}

// Load reads .env once at startup. Missing file is fine, env wins anyway.
func Load() {
	godotenv.Load()
}

func Config(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaults[key]
}
