// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/wondertext/wondertext/internal/i18n"
)

// editorKeyMap holds the editor bindings. Help texts are looked up when the
// map is built so a language change needs a rebuild.
type editorKeyMap struct {
	Focus    key.Binding
	Left     key.Binding
	Right    key.Binding
	Run      key.Binding
	Preview  key.Binding
	Table    key.Binding
	Language key.Binding
	Quit     key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Focus:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", i18n.T("help.focus"))),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", i18n.T("help.navigate"))),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Run:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", i18n.T("help.tool"))),
		Preview:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", i18n.T("help.preview"))),
		Table:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", i18n.T("help.table"))),
		Language: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", i18n.T("help.language"))),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", i18n.T("help.quit"))),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Left, k.Run, k.Preview, k.Table, k.Language, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// referenceKeyMap holds the Morse reference bindings.
type referenceKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Search      key.Binding
	CopyChar    key.Binding
	CopyPattern key.Binding
	Speak       key.Binding
	Back        key.Binding
}

func newReferenceKeyMap() referenceKeyMap {
	return referenceKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", i18n.T("help.navigate"))),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		NextTab:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", i18n.T("help.category"))),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", i18n.T("help.search"))),
		CopyChar:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("help.copy_char"))),
		CopyPattern: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", i18n.T("help.copy_pattern"))),
		Speak:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", i18n.T("help.speak"))),
		Back:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", i18n.T("help.back"))),
	}
}

func (k referenceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.NextTab, k.Search, k.CopyChar, k.CopyPattern, k.Speak, k.Back}
}

func (k referenceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
