package main

import (
	"os"

	"footprint/cmd/footprint/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
