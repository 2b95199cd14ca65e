package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"tuimoney/internal/log"
)

type Config struct {
	// Database
	DBPath string

	// Backend selection
	DataBackend string

	// Logging
	LogFile  string
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		DBPath:      getEnv("TUIMONEY_DB_PATH", "tui-money.db"),
		DataBackend: getEnv("DATA_BACKEND", "sqlite"),
		LogFile:     getEnv("LOG_FILE", "tui-money.log"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{"sqlite", "memory"}
	if !slices.Contains(validBackends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DataBackend == "sqlite" {
		if strings.TrimSpace(c.DBPath) == "" {
			errors = append(errors, "database path cannot be empty when using sqlite backend")
		} else if info, err := os.Stat(c.DBPath); err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("database path '%s' is a directory", c.DBPath))
		}
	}

	// Validate logging
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if strings.TrimSpace(c.LogFile) == "" {
		errors = append(errors, "log file path cannot be empty")
	} else {
		dir := filepath.Dir(c.LogFile)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create log directory '%s': %v", dir, err))
				}
			}
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
