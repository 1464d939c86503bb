// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard gives the editor read/write access to the system
// clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when the platform has no usable clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System returns the platform clipboard. On systems without a clipboard
// utility (e.g. headless Linux without xclip/xsel/wl-clipboard) every call
// fails with ErrUnavailable.
func System() Clipboard {
	if clipboard.Unsupported {
		return unsupported{}
	}
	return system{}
}

type system struct{}

func (system) ReadAll() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

func (system) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

type unsupported struct{}

func (unsupported) ReadAll() (string, error) { return "", ErrUnavailable }
func (unsupported) WriteAll(string) error    { return ErrUnavailable }

// Memory is an in-process clipboard, used for tests and sessions without a
// system clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// ReadAll returns the last written text.
func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteAll replaces the stored text.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
