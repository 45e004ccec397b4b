package main

import (
	"os"

	"github.com/abramin/crossref/cmd/crossref/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
