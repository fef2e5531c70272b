package main

import (
	"os"

	"makeabet/cmd/create-makeabet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
