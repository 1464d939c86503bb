// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/wondertext/wondertext/internal/i18n"
	"github.com/wondertext/wondertext/internal/morse"
	"github.com/wondertext/wondertext/internal/textops"
)

const inputHelp = `

The text is taken from the arguments, joined by single spaces. Without
arguments it is read from standard input. Arguments made of dots, dashes,
slashes and spaces are text, not flags, so Morse code can be passed as is:

  wondertext decode -.- ---

Put flags before the text. A lone "--" ends flag parsing, so the letter M
("--") has to be quoted with other symbols or piped on stdin.`

// newTransformCmd builds a command that prints fn applied to its input.
func newTransformCmd(a *app, use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text...]",
		Short: short,
		Long:  short + "." + inputHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn(text))
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [text...]",
		Short: "Count words and characters and estimate reading time",
		Long: `Prints the word count, the character count and the estimated reading
time at the configured reading speed (editor.reading_wpm).` + inputHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			s := textops.Analyze(text, a.config.Editor.ReadingWPM)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.stats", s.Words, s.Characters, s.ReadingTime))
			return nil
		},
	}
}

func newTableCmd() *cobra.Command {
	var category, search string
	var timing bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the Morse code reference table",
		Long: `Prints the Morse code reference: letters with their phonetic names,
numbers, punctuation and prosigns.

Examples:
  wondertext table --category numbers
  wondertext table --search "...--"
  wondertext table --search wiskey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, ok := morse.ParseCategory(category)
			if !ok {
				return errors.New(i18n.T("cli.unknown_category", category))
			}
			out := cmd.OutOrStdout()
			entries := morse.Search(morse.Reference(), search, cat)
			if len(entries) == 0 {
				fmt.Fprintln(out, i18n.T("table.empty"))
			} else {
				renderReference(out, entries)
			}
			if timing {
				renderTiming(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "all", "Category: all, letters, numbers, punctuation or prosigns")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by character, code or name")
	cmd.Flags().BoolVar(&timing, "timing", false, "Also print the timing rules")
	return cmd
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *ltable.Table {
	return ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

func renderReference(w io.Writer, entries []morse.Entry) {
	t := newTable(i18n.T("table.char"), i18n.T("table.code"), i18n.T("table.name"))
	for _, e := range entries {
		t.Row(e.Char, e.Pattern, e.Label())
	}
	fmt.Fprintln(w, t.Render())
}

func renderTiming(w io.Writer) {
	t := newTable(i18n.T("table.timing"), "")
	for _, r := range morse.Timing() {
		t.Row(r.Unit, i18n.T("table.units", r.Units))
	}
	fmt.Fprintln(w, t.Render())
}
