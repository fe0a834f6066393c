package main

import (
	"os"

	"github.com/clawlint/clawlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
