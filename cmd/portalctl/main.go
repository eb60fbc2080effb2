package main

import (
	"os"

	"portal/cmd/portalctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
