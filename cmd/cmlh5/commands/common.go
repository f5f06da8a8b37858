// Package commands implements the cmlh5 CLI commands.
package commands

import (
	"io"
	"log/slog"

	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// Version is the tool version.
const Version = "0.2.0"

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// loadRegistry returns the built-in definitions, or the ones at path: a
// YAML file or a directory of CSV tables.
func loadRegistry(path string) (*schema.Registry, error) {
	if path == "" {
		return schema.Default()
	}
	return schema.Load(path)
}

// newLogger creates the operational logger of a command.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
