// Package config loads and validates the tidy configuration file. The file
// is TOML, lives at ~/.config/tidy/config.toml by default, and every path
// field is expanded and normalized before use.
package config
