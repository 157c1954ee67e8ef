package main

import (
	"os"

	"gameloader/cmd/gameloader/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
