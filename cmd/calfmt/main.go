package main

import (
	"os"

	"metargb/calendar-format/cmd/calfmt/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
