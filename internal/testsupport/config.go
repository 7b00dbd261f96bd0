// Package testsupport provides builders shared by the package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"tidy/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp log directory per
// test and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithIncludeHidden enables hidden-file scanning on the test config.
func WithIncludeHidden() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.IncludeHidden = true
	}
}

// WithOverrides sets category overrides on the test config.
func WithOverrides(overrides map[string]string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.CategoryOverrides = overrides
	}
}

// WithDenylist adds guard denylist entries to the test config.
func WithDenylist(paths ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Safety.Denylist = append(cfg.Safety.Denylist, paths...)
	}
}
