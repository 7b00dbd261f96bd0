// Package logging configures log/slog output for the organize engine.
// It provides a console handler tuned for interactive runs, a JSON handler
// for machine consumption, typed attribute constructors, and helpers that
// project run metadata from a context onto a logger.
package logging
