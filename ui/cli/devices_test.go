// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"strings"
	"testing"

	"github.com/wondertext/wondertext/internal/tui"
)

func TestCopyAndPaste(t *testing.T) {
	env := newTestEnv(t)

	if out := env.mustRun(t, "", "copy", "clip me"); out != "Copied 7 characters to the clipboard\n" {
		t.Fatalf("copy = %q", out)
	}
	if got, _ := env.clipboard.ReadAll(); got != "clip me" {
		t.Fatalf("clipboard = %q", got)
	}
	if out := env.mustRun(t, "", "paste"); out != "clip me\n" {
		t.Fatalf("paste = %q", out)
	}
}

func TestSpeak(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "speak", "hello")
	if err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("expected unsupported error, got %v", err)
	}

	fake := &fakeSpeaker{}
	env.app.newSpeaker = func(string, int) (tui.Speaker, error) { return fake, nil }
	env.mustRun(t, "", "speak", "hello", "there")
	if len(fake.spoken) != 1 || fake.spoken[0] != "hello there" {
		t.Fatalf("spoken = %v", fake.spoken)
	}
}
