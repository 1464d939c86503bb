// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Wondertext.
//
// Usage:
//
//	go run . [flags]
//	./wondertext [command] [flags]
//
// Without a command the interactive editor starts. See --help for options.
package main

import (
	"os"

	"github.com/wondertext/wondertext/internal/logging"
	"github.com/wondertext/wondertext/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("wondertext: %v", err)
		os.Exit(1)
	}
}
