package main

import (
	"os"

	"github.com/sanonone/wordgraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
