package main

import (
	"os"

	"hospital-replica-sync/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
