// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/wondertext/wondertext/internal/clipboard"
	"github.com/wondertext/wondertext/internal/config"
	"github.com/wondertext/wondertext/internal/db"
	"github.com/wondertext/wondertext/internal/i18n"
)

// fakeSpeaker records utterances instead of running a TTS program.
type fakeSpeaker struct {
	spoken   []string
	speaking bool
	stops    int
	err      error
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) (<-chan error, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.spoken = append(f.spoken, text)
	f.speaking = true
	return make(chan error, 1), nil
}

func (f *fakeSpeaker) Stop() bool {
	f.stops++
	was := f.speaking
	f.speaking = false
	return was
}

func (f *fakeSpeaker) Speaking() bool { return f.speaking }

// newTestDeps wires an in-memory store, an in-process clipboard and a fake
// speaker.
func newTestDeps(t *testing.T) (*Deps, *clipboard.Memory, *fakeSpeaker) {
	t.Helper()
	i18n.Init("en")

	dsn := fmt.Sprintf("file:tui_%d?mode=memory&cache=shared", time.Now().UnixNano())
	store, err := db.New("sqlite", dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Config{}
	cfg.Storage.Slot = db.DefaultSlot
	cfg.Editor.ReadingWPM = 200
	cfg.Language = "en"

	cb := &clipboard.Memory{}
	sp := &fakeSpeaker{}
	return &Deps{Store: store, Clipboard: cb, Speaker: sp, Config: cfg}, cb, sp
}
