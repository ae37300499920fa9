// Package main is the entry point for the ocr2fec CLI.
package main

import (
	"os"

	"github.com/adurand/ocr2fec/cmd/ocr2fec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
