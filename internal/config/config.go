package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DatabasePath string
	CORSOrigins  string
}

func Load() *Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "inventory.db"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.DatabasePath == "inventory.db" {
		log.Println("[WARN] DATABASE_PATH not set, using ./inventory.db")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS not set, allowing only the local dev frontend")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
