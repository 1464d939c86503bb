// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// This file, tui.go, is the entry point for the TUI. It holds the
// top-level model that routes between the editor, the Morse reference and
// the language picker.
package tui

import (
	"context"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wondertext/wondertext/internal/clipboard"
	"github.com/wondertext/wondertext/internal/config"
	"github.com/wondertext/wondertext/internal/db"
	"github.com/wondertext/wondertext/internal/i18n"
	"github.com/wondertext/wondertext/internal/logging"
)

// Speaker reads text aloud. *speech.Speaker satisfies it.
type Speaker interface {
	Speak(ctx context.Context, text string) (<-chan error, error)
	Stop() bool
	Speaking() bool
}

// Deps are the services the TUI works with.
type Deps struct {
	Store     db.Store
	Clipboard clipboard.Clipboard
	// Speaker is nil when no text-to-speech program is available.
	Speaker Speaker
	Config  config.Config
	// SaveConfig persists settings changed from the TUI, such as the
	// language. It may be nil.
	SaveConfig func(config.Config) error
}

func (d *Deps) slot() string {
	if d.Config.Storage.Slot == "" {
		return db.DefaultSlot
	}
	return d.Config.Storage.Slot
}

// viewState represents which screen is active.
type viewState int

const (
	editorView viewState = iota
	referenceView
	languageView
)

// backToEditorMsg is sent by sub-screens when the user leaves them.
type backToEditorMsg struct{}

// languageChangedMsg signals that the UI must be rebuilt with new
// translations. err is set when the choice could not be persisted.
type languageChangedMsg struct {
	lang string
	err  error
}

// mainModel is the top-level model. Key presses go to the active screen;
// every other message is broadcast so that timers and background results
// reach the screen that started them.
type mainModel struct {
	deps      *Deps
	state     viewState
	editor    editorModel
	reference referenceModel
	language  languageModel
	width     int
	height    int
}

func newMainModel(deps *Deps, text string) mainModel {
	return mainModel{
		deps:      deps,
		state:     editorView,
		editor:    newEditorModel(deps, text),
		reference: newReferenceModel(deps),
	}
}

func (m mainModel) Init() tea.Cmd {
	return m.editor.Init()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.editor.keys.Quit) {
			if m.deps.Speaker != nil {
				m.deps.Speaker.Stop()
			}
			return m, tea.Quit
		}
		switch m.state {
		case referenceView:
			m.reference, cmd = m.reference.Update(msg)
		case languageView:
			return m.updateLanguage(msg)
		default:
			switch {
			case key.Matches(msg, m.editor.keys.Table):
				m.state = referenceView
				return m, nil
			case key.Matches(msg, m.editor.keys.Language):
				m.state = languageView
				m.language = newLanguageModel()
				return m, nil
			}
			m.editor, cmd = m.editor.Update(msg)
		}
		return m, cmd

	case backToEditorMsg:
		m.state = editorView
		return m, nil

	case languageChangedMsg:
		// Rebuild every screen so the new translations apply everywhere,
		// keeping the buffer, the revert chain, speech state and window size.
		nm := newMainModel(m.deps, m.editor.Value())
		nm.width, nm.height = m.width, m.height
		nm.editor.history = m.editor.history
		nm.editor.lastTool = m.editor.lastTool
		nm.editor.speaking = m.editor.speaking
		if m.width > 0 {
			size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
			nm.editor, _ = nm.editor.Update(size)
			nm.reference, _ = nm.reference.Update(size)
		}
		if msg.err != nil {
			cmd = nm.editor.notice.set(i18n.T("notice.config_save_failed", msg.err), true)
		} else {
			cmd = nm.editor.notice.set(i18n.T("notice.language", i18n.GetAvailableLocales()[msg.lang]), false)
		}
		return nm, tea.Batch(nm.Init(), cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var editorCmd, referenceCmd tea.Cmd
	m.editor, editorCmd = m.editor.Update(msg)
	m.reference, referenceCmd = m.reference.Update(msg)
	return m, tea.Batch(editorCmd, referenceCmd)
}

func (m mainModel) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = editorView
	case "up", "k":
		if m.language.cursor > 0 {
			m.language.cursor--
		}
	case "down", "j":
		if m.language.cursor < len(m.language.orderedKeys)-1 {
			m.language.cursor++
		}
	case "enter":
		if len(m.language.orderedKeys) == 0 {
			return m, nil
		}
		lang := m.language.orderedKeys[m.language.cursor]
		i18n.SetLang(lang)
		m.deps.Config.Language = lang
		var err error
		if m.deps.SaveConfig != nil {
			if err = m.deps.SaveConfig(m.deps.Config); err != nil {
				logging.Warnf("failed to save config: %v", err)
			}
		}
		return m, func() tea.Msg { return languageChangedMsg{lang: lang, err: err} }
	}
	return m, nil
}

func (m mainModel) View() string {
	switch m.state {
	case referenceView:
		return m.reference.View()
	case languageView:
		return m.language.View()
	default:
		return m.editor.View()
	}
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // lang code to display name
	orderedKeys []string
	cursor      int
}

func newLanguageModel() languageModel {
	choices := i18n.GetAvailableLocales()
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := languageModel{choices: choices, orderedKeys: keys}
	for i, k := range keys {
		if k == i18n.GetLang() {
			m.cursor = i
		}
	}
	return m
}

func (m languageModel) View() string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("language.select"))

	var items []string
	for i, code := range m.orderedKeys {
		name := m.choices[code]
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+name))
		} else {
			items = append(items, itemStyle.Render("  "+name))
		}
	}

	listPane := paneStyle.Padding(1, 2).Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, items...))
	helpLine := footerStyle.Render(AlignFooter(i18n.T("language.help"), "", 40))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}

// Run starts the TUI with text preloaded into the editor and blocks until
// the user quits.
func Run(deps Deps, text string) error {
	p := tea.NewProgram(newMainModel(&deps, text), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
