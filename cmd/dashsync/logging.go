package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// setupLogger returns a text logger on w tagged with a per-run id. Only
// warnings are shown unless verbose is set.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With("run", uuid.NewString())
}
