package main

import (
	"os"

	"github.com/franklinharper/wordle-human-solve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
