// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wondertext/wondertext/internal/i18n"
	"github.com/wondertext/wondertext/internal/morse"
)

// referenceTabs are the category tabs in display order.
var referenceTabs = append([]morse.Category{morse.CategoryAll}, morse.Categories...)

// referenceCopiedMsg reports the result of copying a character or pattern.
type referenceCopiedMsg struct {
	noticeKey string
	value     string
	err       error
}

type referenceModel struct {
	deps    *Deps
	keys    referenceKeyMap
	help    help.Model
	entries []morse.Entry
	counts  map[morse.Category]int
	tab     int
	search  textinput.Model
	table   table.Model
	results []morse.Entry
	notice  notice
}

func newReferenceModel(deps *Deps) referenceModel {
	entries := morse.Reference()

	ti := textinput.New()
	ti.Placeholder = i18n.T("table.search")
	ti.Prompt = "/ "
	ti.CharLimit = 64

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: i18n.T("table.char"), Width: 6},
			{Title: i18n.T("table.code"), Width: 12},
			{Title: i18n.T("table.name"), Width: 24},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	m := referenceModel{
		deps:    deps,
		keys:    newReferenceKeyMap(),
		help:    help.New(),
		entries: entries,
		counts:  morse.Counts(entries),
		search:  ti,
		table:   t,
		notice:  notice{owner: "reference"},
	}
	m.rebuildRows()
	return m
}

// category returns the selected tab's category.
func (m referenceModel) category() morse.Category {
	return referenceTabs[m.tab]
}

// selected returns the entry under the table cursor.
func (m referenceModel) selected() (morse.Entry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.results) {
		return morse.Entry{}, false
	}
	return m.results[i], true
}

// rebuildRows filters the reference by tab and search query and refills
// the table.
func (m *referenceModel) rebuildRows() {
	m.results = morse.Search(m.entries, m.search.Value(), m.category())
	rows := make([]table.Row, 0, len(m.results))
	for _, e := range m.results {
		rows = append(rows, table.Row{e.Char, e.Pattern, e.Label()})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m referenceModel) Init() tea.Cmd {
	return nil
}

func (m referenceModel) Update(msg tea.Msg) (referenceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, tabs, search, timing, notice and help
		m.table.SetHeight(max(5, msg.Height-16))
		m.help.Width = msg.Width
		return m, nil

	case noticeExpiredMsg:
		m.notice.expire(msg)
		return m, nil

	case referenceCopiedMsg:
		if msg.err != nil {
			cmd := m.notice.set(i18n.T("notice.copy_failed", msg.err), true)
			return m, cmd
		}
		cmd := m.notice.set(i18n.T(msg.noticeKey, msg.value), false)
		return m, cmd

	case speechDoneMsg:
		if msg.owner == m.notice.owner && msg.err != nil {
			cmd := m.notice.set(i18n.T("notice.speak_failed", msg.err), true)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.Type {
			case tea.KeyEsc:
				m.search.Blur()
				m.search.SetValue("")
				m.rebuildRows()
				return m, nil
			case tea.KeyEnter, tea.KeyDown, tea.KeyUp:
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			before := m.search.Value()
			m.search, cmd = m.search.Update(msg)
			if m.search.Value() != before {
				m.rebuildRows()
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Back):
			if m.search.Value() != "" {
				m.search.SetValue("")
				m.rebuildRows()
				return m, nil
			}
			return m, func() tea.Msg { return backToEditorMsg{} }
		case key.Matches(msg, m.keys.Search):
			return m, m.search.Focus()
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(referenceTabs)
			m.rebuildRows()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab - 1 + len(referenceTabs)) % len(referenceTabs)
			m.rebuildRows()
			return m, nil
		case key.Matches(msg, m.keys.CopyChar):
			if e, ok := m.selected(); ok {
				return m, m.copyCmd("notice.copied_char", e.Char)
			}
			return m, nil
		case key.Matches(msg, m.keys.CopyPattern):
			if e, ok := m.selected(); ok {
				return m, m.copyCmd("notice.copied_pattern", e.Pattern)
			}
			return m, nil
		case key.Matches(msg, m.keys.Speak):
			if e, ok := m.selected(); ok {
				return m.speak(e)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m referenceModel) copyCmd(noticeKey, value string) tea.Cmd {
	cb := m.deps.Clipboard
	return func() tea.Msg {
		return referenceCopiedMsg{noticeKey: noticeKey, value: value, err: cb.WriteAll(value)}
	}
}

// speak reads the entry's name aloud, interrupting any running utterance.
func (m referenceModel) speak(e morse.Entry) (referenceModel, tea.Cmd) {
	sp := m.deps.Speaker
	if sp == nil {
		cmd := m.notice.set(i18n.T("notice.speak_unsupported"), true)
		return m, cmd
	}
	if sp.Speaking() {
		sp.Stop()
	}
	text := e.Label()
	if text == "" {
		text = e.Char
	}
	done, err := sp.Speak(context.Background(), text)
	if err != nil {
		cmd := m.notice.set(i18n.T("notice.speak_failed", err), true)
		return m, cmd
	}
	cmd := m.notice.set(i18n.T("notice.pronouncing", text), false)
	return m, tea.Batch(cmd, waitForSpeech(m.notice.owner, done))
}

func (m referenceModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("·− "+i18n.T("table.title")) + "\n")

	tabs := make([]string, 0, len(referenceTabs))
	for i, c := range referenceTabs {
		label := fmt.Sprintf("%s (%d)", i18n.T("table.category."+string(c)), m.counts[c])
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")
	b.WriteString(m.search.View() + "\n\n")

	if len(m.results) == 0 {
		b.WriteString(helpStyle.Render(i18n.T("table.empty")) + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	b.WriteString("\n" + paneTitleStyle.Render(i18n.T("table.timing")) + "\n")
	for _, r := range morse.Timing() {
		b.WriteString(AlignFooter("  "+r.Unit, patternStyle.Render(i18n.T("table.units", r.Units)), 40) + "\n")
	}

	b.WriteString("\n" + m.notice.View() + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
