// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/wondertext/wondertext/internal/i18n"
	"github.com/wondertext/wondertext/internal/logging"
	"github.com/wondertext/wondertext/internal/textops"
)

// editorFocus is the part of the editor screen receiving key presses.
type editorFocus int

const (
	focusText editorFocus = iota
	focusTools
)

// toolGroup is one labelled row of the tool palette.
type toolGroup struct {
	labelKey string
	tools    []textops.Tool
}

var toolGroups = []toolGroup{
	{"group.basic", []textops.Tool{textops.ToolUpper, textops.ToolLower, textops.ToolTrim, textops.ToolClear}},
	{"group.clipboard", []textops.Tool{textops.ToolCopy, textops.ToolPaste}},
	{"group.speech", []textops.Tool{textops.ToolSpeak}},
	{"group.morse", []textops.Tool{textops.ToolToMorse, textops.ToolFromMorse}},
	{"group.storage", []textops.Tool{textops.ToolSave, textops.ToolLoad, textops.ToolClearStorage}},
}

// i18nKey maps a tool to the suffix shared by its tool.* and notice.* keys.
func i18nKey(t textops.Tool) string {
	return strings.ReplaceAll(string(t), "-", "_")
}

func toolLabel(t textops.Tool) string {
	return i18n.T("tool." + i18nKey(t))
}

// Messages produced by the editor's asynchronous tools.
type clipboardWrittenMsg struct{ err error }

type clipboardReadMsg struct {
	text string
	err  error
}

type speechDoneMsg struct {
	owner string
	err   error
}

type storageDoneMsg struct {
	tool textops.Tool
	text string
	err  error
}

type copiedResetMsg struct{ seq int }

type editorModel struct {
	deps          *Deps
	keys          editorKeyMap
	help          help.Model
	textarea      textarea.Model
	preview       viewport.Model
	renderer      *glamour.TermRenderer
	rendererWidth int

	tools    []textops.Tool // palette in navigation order
	cursor   int
	focus    editorFocus
	history  textops.History
	lastTool textops.Tool // highlighted in the palette

	notice      notice
	copied      bool
	copiedSeq   int
	speaking    bool
	showPreview bool

	width  int
	height int
}

func newEditorModel(deps *Deps, text string) editorModel {
	ta := textarea.New()
	ta.Placeholder = i18n.T("editor.placeholder")
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetValue(text)
	ta.Focus()

	var tools []textops.Tool
	for _, g := range toolGroups {
		tools = append(tools, g.tools...)
	}

	m := editorModel{
		deps:        deps,
		keys:        newEditorKeyMap(),
		help:        help.New(),
		textarea:    ta,
		preview:     viewport.New(60, 8),
		tools:       tools,
		notice:      notice{owner: "editor"},
		showPreview: deps.Config.Editor.Preview,
	}
	m.refreshPreview()
	return m
}

// Value returns the current buffer.
func (m editorModel) Value() string {
	return m.textarea.Value()
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case noticeExpiredMsg:
		m.notice.expire(msg)
		return m, nil

	case copiedResetMsg:
		if msg.seq == m.copiedSeq {
			m.copied = false
		}
		return m, nil

	case clipboardWrittenMsg:
		if msg.err != nil {
			cmd := m.notice.set(i18n.T("notice.copy_failed", msg.err), true)
			return m, cmd
		}
		m.copied = true
		m.copiedSeq++
		seq := m.copiedSeq
		cmd := m.notice.set(i18n.T("notice.copy"), false)
		return m, tea.Batch(cmd, tea.Tick(copiedTTL, func(_ time.Time) tea.Msg { return copiedResetMsg{seq: seq} }))

	case clipboardReadMsg:
		if msg.err != nil {
			cmd := m.notice.set(i18n.T("notice.paste_failed", msg.err), true)
			return m, cmd
		}
		m.setText(textops.Append(m.textarea.Value(), msg.text))
		cmd := m.notice.set(i18n.T("notice.paste"), false)
		return m, cmd

	case speechDoneMsg:
		if msg.owner != m.notice.owner {
			return m, nil
		}
		m.speaking = false
		if msg.err != nil {
			cmd := m.notice.set(i18n.T("notice.speak_failed", msg.err), true)
			return m, cmd
		}
		return m, nil

	case storageDoneMsg:
		return m.storageDone(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Focus):
			if m.focus == focusText {
				m.focus = focusTools
				m.textarea.Blur()
				return m, nil
			}
			m.focus = focusText
			return m, m.textarea.Focus()
		case key.Matches(msg, m.keys.Preview):
			m.showPreview = !m.showPreview
			m.refreshPreview()
			return m, nil
		}
		if m.focus == focusTools {
			n := len(m.tools)
			switch {
			case key.Matches(msg, m.keys.Left):
				m.cursor = (m.cursor - 1 + n) % n
			case key.Matches(msg, m.keys.Right):
				m.cursor = (m.cursor + 1) % n
			case key.Matches(msg, m.keys.Run):
				return m.runTool(m.tools[m.cursor])
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.textarea.Value()
	m.textarea, cmd = m.textarea.Update(msg)
	if m.textarea.Value() != before {
		m.refreshPreview()
	}
	if _, ok := msg.(tea.MouseMsg); ok && m.showPreview {
		var vpCmd tea.Cmd
		m.preview, vpCmd = m.preview.Update(msg)
		cmd = tea.Batch(cmd, vpCmd)
	}
	return m, cmd
}

// runTool executes tool against the buffer. Text transformations apply
// synchronously; clipboard, speech and storage tools return a command whose
// result message finishes the job.
func (m editorModel) runTool(tool textops.Tool) (editorModel, tea.Cmd) {
	text := m.textarea.Value()
	if tool.RequiresText() && text == "" {
		cmd := m.notice.set(i18n.T("notice.disabled"), true)
		return m, cmd
	}
	m.lastTool = tool

	ctx := context.Background()
	slot := m.deps.slot()
	switch tool {
	case textops.ToolCopy:
		cb := m.deps.Clipboard
		return m, func() tea.Msg { return clipboardWrittenMsg{err: cb.WriteAll(text)} }
	case textops.ToolPaste:
		cb := m.deps.Clipboard
		return m, func() tea.Msg {
			s, err := cb.ReadAll()
			return clipboardReadMsg{text: s, err: err}
		}
	case textops.ToolSpeak:
		return m.toggleSpeech(text)
	case textops.ToolSave:
		store := m.deps.Store
		return m, func() tea.Msg { return storageDoneMsg{tool: tool, err: store.SaveText(ctx, slot, text)} }
	case textops.ToolLoad:
		store := m.deps.Store
		return m, func() tea.Msg {
			s, err := store.LoadText(ctx, slot)
			return storageDoneMsg{tool: tool, text: s, err: err}
		}
	case textops.ToolClearStorage:
		store := m.deps.Store
		return m, func() tea.Msg { return storageDoneMsg{tool: tool, err: store.ClearText(ctx, slot)} }
	}

	out, reverted, err := m.history.Apply(tool, text)
	if err != nil {
		cmd := m.notice.set(err.Error(), true)
		return m, cmd
	}
	m.setText(out)
	var cmd tea.Cmd
	if reverted {
		cmd = m.notice.set(i18n.T("notice.reverted", toolLabel(tool)), false)
	} else {
		cmd = m.notice.set(i18n.T("notice."+i18nKey(tool)), false)
	}
	return m, cmd
}

func (m editorModel) toggleSpeech(text string) (editorModel, tea.Cmd) {
	sp := m.deps.Speaker
	if sp == nil {
		cmd := m.notice.set(i18n.T("notice.speak_unsupported"), true)
		return m, cmd
	}
	if sp.Speaking() {
		sp.Stop()
		m.speaking = false
		cmd := m.notice.set(i18n.T("notice.speak_stopped"), false)
		return m, cmd
	}
	done, err := sp.Speak(context.Background(), text)
	if err != nil {
		cmd := m.notice.set(i18n.T("notice.speak_failed", err), true)
		return m, cmd
	}
	m.speaking = true
	cmd := m.notice.set(i18n.T("notice.speak"), false)
	return m, tea.Batch(cmd, waitForSpeech(m.notice.owner, done))
}

func waitForSpeech(owner string, done <-chan error) tea.Cmd {
	return func() tea.Msg { return speechDoneMsg{owner: owner, err: <-done} }
}

func (m editorModel) storageDone(msg storageDoneMsg) (editorModel, tea.Cmd) {
	slot := m.deps.slot()
	if msg.err != nil {
		logging.Warnf("storage %s on slot %q failed: %v", msg.tool, slot, msg.err)
		cmd := m.notice.set(i18n.T("notice.storage_failed", msg.err), true)
		return m, cmd
	}
	var cmd tea.Cmd
	switch msg.tool {
	case textops.ToolSave:
		cmd = m.notice.set(i18n.T("notice.save", slot), false)
	case textops.ToolLoad:
		m.setText(msg.text)
		if msg.text == "" {
			cmd = m.notice.set(i18n.T("notice.load_empty", slot), false)
			break
		}
		cmd = m.notice.set(i18n.T("notice.load", slot), false)
	case textops.ToolClearStorage:
		cmd = m.notice.set(i18n.T("notice.clear_storage", slot), false)
	}
	return m, cmd
}

func (m *editorModel) setText(s string) {
	m.textarea.SetValue(s)
	m.refreshPreview()
}

func (m *editorModel) resize(width, height int) {
	m.width, m.height = width, height
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	m.textarea.SetWidth(inner)
	m.textarea.SetHeight(max(3, height/3))
	m.preview.Width = inner
	m.preview.Height = max(3, height/4)
	m.help.Width = width
	m.refreshPreview()
}

// ensureRenderer builds the markdown renderer for the current preview
// width. Without a known window size the preview shows the raw text.
func (m *editorModel) ensureRenderer() {
	if m.width == 0 || (m.renderer != nil && m.rendererWidth == m.preview.Width) {
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(m.preview.Width))
	if err != nil {
		logging.Debugf("markdown renderer unavailable: %v", err)
		m.renderer = nil
		return
	}
	m.renderer = r
	m.rendererWidth = m.preview.Width
}

// refreshPreview renders the buffer as markdown into the preview pane.
func (m *editorModel) refreshPreview() {
	if !m.showPreview {
		return
	}
	text := m.textarea.Value()
	if strings.TrimSpace(text) == "" {
		m.preview.SetContent(helpStyle.Render(i18n.T("editor.preview_empty")))
		return
	}
	out := text
	m.ensureRenderer()
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(text); err == nil {
			out = rendered
		} else {
			logging.Debugf("markdown render failed: %v", err)
		}
	}
	m.preview.SetContent(out)
}

func (m editorModel) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		mainTitleStyle.Render("✎ "+i18n.T("editor.title")),
		subtitleStyle.Render(i18n.T("editor.subtitle")),
	)

	textPane := paneStyle
	if m.focus == focusText {
		textPane = focusedPaneStyle
	}
	toolsPane := paneStyle
	if m.focus == focusTools {
		toolsPane = focusedPaneStyle
	}

	sections := []string{
		header,
		textPane.Render(m.textarea.View()),
		helpStyle.Render(m.statsLine()),
		toolsPane.Render(m.paletteView()),
	}
	if m.showPreview {
		sections = append(sections, paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			paneTitleStyle.Render(i18n.T("editor.preview")),
			m.preview.View(),
		)))
	}
	sections = append(sections, m.notice.View(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m editorModel) statsLine() string {
	s := textops.Analyze(m.textarea.Value(), m.deps.Config.Editor.ReadingWPM)
	return fmt.Sprintf("%s: %d • %s: %d • %s: %ds",
		i18n.T("editor.characters"), s.Characters,
		i18n.T("editor.words"), s.Words,
		i18n.T("editor.reading_time"), s.ReadingTime)
}

func (m editorModel) paletteView() string {
	empty := m.textarea.Value() == ""
	rows := []string{paneTitleStyle.Render(i18n.T("editor.tools"))}
	idx := 0
	for _, g := range toolGroups {
		buttons := []string{groupLabelStyle.Render(i18n.T(g.labelKey))}
		for _, tool := range g.tools {
			label := toolLabel(tool)
			switch {
			case tool == textops.ToolCopy && m.copied:
				label = i18n.T("tool.copied")
			case tool == textops.ToolSpeak && m.speaking:
				label = i18n.T("tool.stop")
			}
			style := buttonStyle
			switch {
			case m.focus == focusTools && idx == m.cursor:
				style = activeButtonStyle
			case empty && tool.RequiresText():
				style = disabledButtonStyle
			case tool == m.lastTool:
				style = lastToolButtonStyle
			}
			buttons = append(buttons, style.Render(label))
			idx++
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
