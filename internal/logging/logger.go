// Package logging builds the structured logger shared by the shell components.
package logging

import (
	"io"
	"log/slog"
)

// Component attribute key used to tag log lines by subsystem
const ComponentKey = "component"

// New creates a text logger writing to w at the given level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Component returns a child logger tagged with a subsystem name
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(ComponentKey, name)
}
