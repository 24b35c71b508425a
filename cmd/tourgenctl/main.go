package main

import (
	"os"

	"tourgen/cmd/tourgenctl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
