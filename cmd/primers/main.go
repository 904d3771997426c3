package main

import (
	"os"

	"primers/cmd/primers/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
