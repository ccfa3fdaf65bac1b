package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	// Storage
	DataBackend  string
	DataDir      string
	SQLiteDBPath string

	// Logging
	LogLevel  string
	LogFormat string

	// Reports
	TopN            int
	ReportCacheSize int
	HistogramWidth  int
}

func Load() *Config {
	cfg := &Config{
		DataBackend:  getEnv("DATA_BACKEND", BackendFile),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/spendlog.db"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		TopN:            getEnvInt("TOP_N", 5),
		ReportCacheSize: getEnvInt("REPORT_CACHE_SIZE", 32),
		HistogramWidth:  getEnvInt("HISTOGRAM_WIDTH", 40),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{BackendMemory, BackendFile, BackendSQLite}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case BackendFile:
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		} else if info, err := os.Stat(c.DataDir); err == nil && !info.IsDir() {
			errors = append(errors, fmt.Sprintf("data directory '%s' is not a directory", c.DataDir))
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if info, err := os.Stat(dir); err == nil && !info.IsDir() {
				errors = append(errors, fmt.Sprintf("SQLite database directory '%s' is not a directory", dir))
			}
		}
	}

	// Validate logging
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	// Validate report settings
	if c.TopN < 1 || c.TopN > 50 {
		errors = append(errors, fmt.Sprintf("invalid top n %d: must be between 1 and 50", c.TopN))
	}
	if c.ReportCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid report cache size %d: must be at least 1", c.ReportCacheSize))
	}
	if c.HistogramWidth < 10 || c.HistogramWidth > 200 {
		errors = append(errors, fmt.Sprintf("invalid histogram width %d: must be between 10 and 200", c.HistogramWidth))
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

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
