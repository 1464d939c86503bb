// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package textops

import (
	"fmt"

	"github.com/wondertext/wondertext/internal/morse"
)

// Tool names one editor action.
type Tool string

const (
	ToolUpper        Tool = "upper"
	ToolLower        Tool = "lower"
	ToolTrim         Tool = "trim"
	ToolCopy         Tool = "copy"
	ToolPaste        Tool = "paste"
	ToolSpeak        Tool = "speak"
	ToolToMorse      Tool = "to-morse"
	ToolFromMorse    Tool = "from-morse"
	ToolSave         Tool = "save"
	ToolLoad         Tool = "load"
	ToolClearStorage Tool = "clear-storage"
	ToolClear        Tool = "clear"
)

var pure = map[Tool]func(string) string{
	ToolUpper:     Upper,
	ToolLower:     Lower,
	ToolTrim:      CollapseSpaces,
	ToolToMorse:   morse.Encode,
	ToolFromMorse: morse.Decode,
	ToolClear:     func(string) string { return "" },
}

// IsPure reports whether the tool is a plain text transformation.
func (t Tool) IsPure() bool {
	_, ok := pure[t]
	return ok
}

// RequiresText reports whether the tool is disabled on an empty buffer.
// Only paste and load can produce text from nothing.
func (t Tool) RequiresText() bool {
	return t != ToolPaste && t != ToolLoad
}

// Apply runs a pure tool on text.
func (t Tool) Apply(text string) (string, error) {
	fn, ok := pure[t]
	if !ok {
		return text, fmt.Errorf("tool %q is not a text transformation", t)
	}
	return fn(text), nil
}

// History implements "apply a tool twice to revert": applying the same pure
// tool twice in a row restores the buffer from before the first application.
// Any other tool or a manual edit breaks the chain.
type History struct {
	last   Tool
	before string
	after  string
}

// Apply runs tool on text, or reverts the previous application of the same
// tool if text is still what that application produced. reverted reports
// which of the two happened.
func (h *History) Apply(tool Tool, text string) (out string, reverted bool, err error) {
	if h.last == tool && text == h.after {
		out = h.before
		h.Reset()
		return out, true, nil
	}
	out, err = tool.Apply(text)
	if err != nil {
		return text, false, err
	}
	h.last, h.before, h.after = tool, text, out
	return out, false, nil
}

// Reset forgets the last application.
func (h *History) Reset() {
	*h = History{}
}

// Last returns the tool applied most recently, or "" after a reset.
func (h *History) Last() Tool {
	return h.last
}
