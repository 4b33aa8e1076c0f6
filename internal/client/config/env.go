package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envDatabasePath   = "CREDKEEPER_DATABASE_PATH"
	envStorageBackend = "CREDKEEPER_STORAGE_BACKEND"
	envLogLevel       = "CREDKEEPER_LOG_LEVEL"
)

// parseEnv overlays Config with CREDKEEPER_* variables. A .env file in the
// working directory is loaded first if it exists; variables already set in
// the process environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envStorageBackend); v != "" {
		cfg.StorageBackend = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
