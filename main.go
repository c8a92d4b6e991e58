package main

import (
	"os"

	"github.com/hpkotak/execgate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
