// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlignFooter returns a single-line string where right is right-aligned
// within width columns and left is at the start. If width is too small a
// single space separates the tokens. Widths are measured in terminal cells,
// so styled input is aligned correctly.
func AlignFooter(left, right string, width int) string {
	spaces := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}
