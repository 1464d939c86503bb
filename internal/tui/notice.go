// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	noticeTTL = 3 * time.Second
	copiedTTL = 2 * time.Second
)

// notice is the transient status line shown under a screen. Each call to
// set bumps seq so that only the most recent notice is cleared when its
// timer fires.
type notice struct {
	owner   string
	text    string
	isError bool
	seq     int
}

type noticeExpiredMsg struct {
	owner string
	seq   int
}

func (n *notice) set(text string, isError bool) tea.Cmd {
	n.seq++
	n.text = text
	n.isError = isError
	owner, seq := n.owner, n.seq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{owner: owner, seq: seq}
	})
}

func (n *notice) expire(msg noticeExpiredMsg) {
	if msg.owner == n.owner && msg.seq == n.seq {
		n.text = ""
		n.isError = false
	}
}

func (n notice) View() string {
	if n.text == "" {
		return ""
	}
	if n.isError {
		return errorStyle.Render("✗ " + n.text)
	}
	return successStyle.Render("✓ " + n.text)
}
