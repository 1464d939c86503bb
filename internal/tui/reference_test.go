// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wondertext/wondertext/internal/morse"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReferenceTabsFilterByCategory(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	m := newReferenceModel(deps)

	if m.category() != morse.CategoryAll || len(m.results) != 60 {
		t.Fatalf("initial tab %s with %d rows", m.category(), len(m.results))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.category() != morse.CategoryLetters || len(m.results) != 26 {
		t.Fatalf("after tab: %s with %d rows", m.category(), len(m.results))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.category() != morse.CategoryProsigns || len(m.results) != 6 {
		t.Fatalf("after wrap: %s with %d rows", m.category(), len(m.results))
	}
	if !strings.Contains(m.View(), "Prosigns (6)") {
		t.Fatal("tab labels should carry counts")
	}
}

func TestReferenceSearch(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	m := newReferenceModel(deps)

	m, _ = m.Update(keyRunes("/"))
	if !m.search.Focused() {
		t.Fatal("/ should focus the search box")
	}
	m, _ = m.Update(keyRunes("sos"))
	if len(m.results) != 1 || m.results[0].Char != "SOS" {
		t.Fatalf("search results = %+v", m.results)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.search.Focused() || m.search.Value() != "sos" {
		t.Fatal("enter should keep the query and leave the search box")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || m.search.Value() != "" || len(m.results) != 60 {
		t.Fatal("esc should clear an active query before leaving")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc without a query should leave the screen")
	}
	if _, ok := cmd().(backToEditorMsg); !ok {
		t.Fatal("expected backToEditorMsg")
	}

	m, _ = m.Update(keyRunes("/"))
	m, _ = m.Update(keyRunes("zzzz"))
	if len(m.results) != 0 || !strings.Contains(m.View(), "No matching characters") {
		t.Fatal("unmatched query should show the empty state")
	}
}

func TestReferenceCopyAndSpeak(t *testing.T) {
	deps, cb, sp := newTestDeps(t)
	m := newReferenceModel(deps)

	m, cmd := m.Update(keyRunes("c"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m, _ = m.Update(cmd())
	if got, _ := cb.ReadAll(); got != "A" {
		t.Fatalf("clipboard = %q", got)
	}
	if m.notice.text != "Copied character: A" {
		t.Fatalf("notice = %q", m.notice.text)
	}

	m, cmd = m.Update(keyRunes("m"))
	m, _ = m.Update(cmd())
	if got, _ := cb.ReadAll(); got != ".-" {
		t.Fatalf("clipboard = %q", got)
	}

	m, _ = m.Update(keyRunes("s"))
	if len(sp.spoken) != 1 || sp.spoken[0] != "Alfa" {
		t.Fatalf("spoken = %v", sp.spoken)
	}
	if m.notice.text != "Pronouncing: Alfa" {
		t.Fatalf("notice = %q", m.notice.text)
	}

	m, _ = m.Update(keyRunes("s"))
	if sp.stops != 1 || len(sp.spoken) != 2 {
		t.Fatalf("a new utterance should interrupt the running one: stops=%d spoken=%v", sp.stops, sp.spoken)
	}
}

func TestReferenceViewShowsTiming(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	view := newReferenceModel(deps).View()
	for _, want := range []string{"Morse Code Table", "Timing", "Space between words", "7 units"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
