// FutonFrame - futon frame structural calculator
//
// Derives beam lengths, notch positions, failure loads and rear support
// heights for a futon frame from its design constants and prints them as
// labeled lines. Run without arguments to use the built-in design.
//
// Build:
//   go build -o futonframe ./cmd/futonframe
//
// Examples:
//   futonframe
//   futonframe --design frame.yaml
//   futonframe export pdf > frame.pdf

package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("futonframe failed", "error", err)
		os.Exit(1)
	}
}
