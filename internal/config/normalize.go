package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSafety(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		if value, ok := os.LookupEnv("TIDY_LOG_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.LogDir = value
		} else {
			c.Paths.LogDir = defaultLogDir
		}
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSafety() error {
	normalized := make([]string, 0, len(c.Safety.Denylist))
	for _, entry := range c.Safety.Denylist {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("safety.denylist: %w", err)
		}
		normalized = append(normalized, expanded)
	}
	c.Safety.Denylist = normalized
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
