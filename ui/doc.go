// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of Wondertext.
//
// The cobra command tree lives in ui/cli; it starts the interactive editor
// from internal/tui when no subcommand is given.
package ui
