// Package config provides configuration management for the invoice pipeline.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Export  ExportConfig
	Journal JournalConfig

	// TotalsTolerance is the relative tolerance for the invoice totals
	// cross-check. Zero means the built-in default.
	TotalsTolerance float64

	// TablesPath points to an accounting tables YAML override. Optional.
	TablesPath string

	Debug bool
}

// ExportConfig represents FEC export configuration.
type ExportConfig struct {
	Root  string
	SIREN string
}

// JournalConfig represents the journal labels stamped on exported rows.
type JournalConfig struct {
	Code string
	Lib  string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	tolerance, err := parseFloatEnv("FACTURE_TOTALS_TOLERANCE", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid FACTURE_TOTALS_TOLERANCE: %w", err)
	}

	config := &Config{
		Export: ExportConfig{
			Root:  getEnvOrDefault("FACTURE_EXPORT_ROOT", "./exports"),
			SIREN: os.Getenv("FACTURE_SIREN"),
		},
		Journal: JournalConfig{
			Code: getEnvOrDefault("FACTURE_JOURNAL_CODE", "AC"),
			Lib:  getEnvOrDefault("FACTURE_JOURNAL_LIB", "ACHATS"),
		},
		TotalsTolerance: tolerance,
		TablesPath:      os.Getenv("FACTURE_TABLES_PATH"),
		Debug:           os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate(required ...string) error {
	var missing []string

	for _, key := range required {
		var value string
		switch key {
		case "export.root":
			value = c.Export.Root
		case "export.siren":
			value = c.Export.SIREN
		case "journal.code":
			value = c.Journal.Code
		case "journal.lib":
			value = c.Journal.Lib
		case "tables.path":
			value = c.TablesPath
		}

		if value == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseFloatEnv parses a float64 from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value for %s: %s", key, value)
	}

	return parsed, nil
}
