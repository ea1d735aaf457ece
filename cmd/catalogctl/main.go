package main

import (
	"os"

	"github.com/Skotchmaster/pitipaw_catalog/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
