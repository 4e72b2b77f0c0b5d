package main

import (
	"os"

	"github.com/anandk/termquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
