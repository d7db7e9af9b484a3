package main

import (
	"os"

	"soundcheck/cmd/soundcheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
