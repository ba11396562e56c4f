// Package config provides application configuration.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Addr       string
	DBDriver   string
	DBDSN      string
	GitHubPAT  string
	AIEndpoint string
	AIModel    string
	AITimeout  time.Duration
}

// Load reads configuration from the environment, honoring a local .env
// file when present. The GitHub credential is read once here; an empty
// value means chat runs on canned fallback replies.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:       ":" + getEnv("PORT", "8080"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:      getEnv("DB_DSN", "learning_buddy.db"),
		GitHubPAT:  getEnv("GITHUB_PAT", ""),
		AIEndpoint: getEnv("AI_ENDPOINT", ""),
		AIModel:    getEnv("AI_MODEL", ""),
		AITimeout:  time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
