package main

import (
	"os"

	"github.com/npillmayer/syllabify/cmd/syllabify/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
