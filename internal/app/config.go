package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Out io.Writer // program output, normally os.Stdout
	Err io.Writer // diagnostics, normally os.Stderr
}
