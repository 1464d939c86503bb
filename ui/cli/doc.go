// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Wondertext using
// Cobra. It loads configuration, opens the slot store on demand and exposes
// every editor tool as a subcommand. Running without a subcommand starts the
// interactive TUI.
package cli
