// Package main provides the cosmicsite CLI for the Cosmic Mystery Center landing page.
package main

import (
	"os"

	"github.com/cosmicmystery/cosmicsite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
