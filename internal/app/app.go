package app

import (
	"io"
	"log/slog"
	"os"
)

type App struct {
	Out io.Writer
	Err io.Writer
	Log *slog.Logger
}

// New builds an App from cfg, falling back to the process streams.
func New(cfg Config) *App {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	errW := cfg.Err
	if errW == nil {
		errW = os.Stderr
	}
	return &App{
		Out: out,
		Err: errW,
		Log: newLogger(errW),
	}
}
