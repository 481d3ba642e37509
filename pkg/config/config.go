package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string

	APIBaseURL  string
	HTTPTimeout time.Duration

	SessionFile string
}

func Load() Config {
	// .env is optional, env vars win either way
	_ = godotenv.Load()

	return Config{
		Env:         getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080/api"),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT", 10*time.Second),
		SessionFile: getEnv("SESSION_FILE", defaultSessionFile()),
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "pawmart", "session.json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
