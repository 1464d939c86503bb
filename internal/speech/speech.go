// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package speech reads text aloud through an external text-to-speech
// program such as espeak-ng, say or spd-say.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/kballard/go-shellquote"
)

var (
	// ErrUnavailable is returned when no text-to-speech program is found.
	ErrUnavailable = errors.New("speech synthesis not supported")
	// ErrBusy is returned by Speak while a previous utterance is running.
	ErrBusy = errors.New("already speaking")
)

// candidates are tried in order when no command is configured.
var candidates = []string{"espeak-ng", "espeak", "say", "spd-say"}

// lookPath is overridable in tests.
var lookPath = exec.LookPath

// Speaker runs one utterance at a time.
type Speaker struct {
	argv []string

	mu sync.Mutex
	// current is the running utterance. Stop clears it right away so a new
	// utterance can start before the old process has exited.
	current *utterance
}

type utterance struct {
	cancel context.CancelFunc
}

// New builds a Speaker. command is a shell-quoted program plus leading
// arguments; when empty the first installed candidate is used. A positive
// rate (words per minute) is passed to programs that accept one.
func New(command string, rate int) (*Speaker, error) {
	var argv []string
	if command == "" {
		for _, c := range candidates {
			if _, err := lookPath(c); err == nil {
				argv = []string{c}
				break
			}
		}
		if argv == nil {
			return nil, ErrUnavailable
		}
	} else {
		parts, err := shellquote.Split(command)
		if err != nil {
			return nil, fmt.Errorf("parse speech command %q: %w", command, err)
		}
		if len(parts) == 0 {
			return nil, ErrUnavailable
		}
		if _, err := lookPath(parts[0]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		argv = parts
	}
	return &Speaker{argv: withProgramFlags(argv, rate)}, nil
}

// withProgramFlags adds the rate flag and, for spd-say, the flag that makes
// it wait until speech has finished. Known synthesizers parse options
// getopt-style, so "--" ends them and text starting with "-" is spoken.
func withProgramFlags(argv []string, rate int) []string {
	out := append([]string(nil), argv...)
	switch filepath.Base(argv[0]) {
	case "espeak", "espeak-ng":
		if rate > 0 {
			out = append(out, "-s", strconv.Itoa(rate))
		}
	case "say":
		if rate > 0 {
			out = append(out, "-r", strconv.Itoa(rate))
		}
	case "spd-say":
		out = append(out, "-w")
	default:
		return out
	}
	out = append(out, "--")
	return out
}

// Command returns the program and arguments used for speaking, without the
// text.
func (s *Speaker) Command() []string {
	return append([]string(nil), s.argv...)
}

// Speak starts reading text aloud and returns immediately. The returned
// channel receives exactly one value when speech ends: nil on success or
// after Stop, otherwise the program's error.
func (s *Speaker) Speak(ctx context.Context, text string) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return nil, ErrBusy
	}

	runCtx, cancel := context.WithCancel(ctx)
	args := append(append([]string(nil), s.argv[1:]...), text)
	cmd := exec.CommandContext(runCtx, s.argv[0], args...)
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", s.argv[0], err)
	}
	u := &utterance{cancel: cancel}
	s.current = u

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		stopped := runCtx.Err() != nil
		cancel()

		s.mu.Lock()
		if s.current == u {
			s.current = nil
		}
		s.mu.Unlock()

		if stopped {
			err = nil
		}
		done <- err
	}()
	return done, nil
}

// Stop interrupts the running utterance and reports whether one was running.
func (s *Speaker) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return false
	}
	s.current.cancel()
	s.current = nil
	return true
}

// Speaking reports whether an utterance is running.
func (s *Speaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}
