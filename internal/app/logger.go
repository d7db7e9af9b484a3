package app

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Only warnings and errors are emitted,
// so stderr stays empty on a normal run.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
