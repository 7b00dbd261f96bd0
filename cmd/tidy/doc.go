// Package main hosts the tidy CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the organize engine: a full
// classify-and-relocate run, a read-only plan preview, and configuration
// scaffolding. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
