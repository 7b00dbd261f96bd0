package config

import (
	"fmt"
	"strings"

	"tidy/internal/classify"
)

// Validate checks field values after normalization. It does not touch the
// filesystem; directory creation happens in EnsureDirectories.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	for key, value := range c.Organize.CategoryOverrides {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("organize.category_overrides: empty extension key")
		}
		if _, err := classify.ParseCategory(value); err != nil {
			return fmt.Errorf("organize.category_overrides: %w", err)
		}
	}

	return nil
}
