// Package app wires runtime dependencies for the CLI.
//
// It builds the logger and output streams from Config and exposes them via
// App for commands to use.
package app
