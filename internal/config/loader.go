package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/thruflo/guess/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultMin      uint32 = 1
	DefaultMax      uint32 = 100
	DefaultLogLevel        = "warn"
)

// DefaultRange returns the range used when nothing else is configured.
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Range:    DefaultRange(),
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults; a path that does not exist is an error since it
// was asked for explicitly.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides cfg with any GUESS_* environment variables that are
// set. Unset variables leave the current values in place.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return ValidateConfig(cfg)
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Range.Min > cfg.Range.Max {
		return ValidationError{Field: "range", Message: "min must not exceed max"}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
