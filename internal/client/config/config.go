package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds runtime settings for the credkeeper CLI.
type Config struct {
	DatabasePath   string
	StorageBackend string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "credkeeper.db"
	c.StorageBackend = BackendSQLite
	c.LogLevel = "info"
}

// Validate reports settings no component can act on.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database path must be set for the %s backend", BackendSQLite)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
