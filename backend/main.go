package main

import (
	"os"

	"khelkhatm/backend/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
