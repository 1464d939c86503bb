// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransformCommands(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "SOS"}, "... --- ...\n"},
		{[]string{"encode", "Hi", "there"}, ".... .. / - .... . .-. .\n"},
		{[]string{"decode", "... --- ..."}, "SOS\n"},
		{[]string{"upper", "straße"}, "STRASSE\n"},
		{[]string{"lower", "LOUD"}, "loud\n"},
		{[]string{"trim", "  a   b  "}, "a b\n"},
	}
	for _, tt := range tests {
		if got := env.mustRun(t, "", tt.args...); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestDecodeDashLeadingArguments(t *testing.T) {
	env := newTestEnv(t)
	if got := env.mustRun(t, "", "decode", "-.-", "---"); got != "KO\n" {
		t.Fatalf("decode -.- --- = %q", got)
	}
	if got := env.mustRun(t, "", "decode", "- . ... -"); got != "TEST\n" {
		t.Fatalf("decode of a single dash-leading argument = %q", got)
	}
	if got := env.mustRun(t, "", "--storage.slot", "x", "decode", "-- ---"); got != "MO\n" {
		t.Fatalf("decode after a persistent flag = %q", got)
	}
	// Flag values of other commands are left alone.
	out := env.mustRun(t, "", "table", "--search", "-.-")
	if !strings.Contains(out, "Kilo") {
		t.Fatalf("table --search -.- should list K:\n%s", out)
	}
}

func TestProtectTextArgs(t *testing.T) {
	root := newRootCmd(newTestEnv(t).app)
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"decode", "-.-"}, []string{"decode", "--", "-.-"}},
		{[]string{"--database.dsn", "x.db", "decode", "hello", "-.-"}, []string{"--database.dsn", "x.db", "decode", "hello", "--", "-.-"}},
		{[]string{"decode", "--", "-.-"}, []string{"decode", "--", "-.-"}},
		{[]string{"decode", "-v", "..."}, []string{"decode", "-v", "..."}},
		{[]string{"table", "--search", "-.-"}, []string{"table", "--search", "-.-"}},
		{[]string{"load"}, []string{"load"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, protectTextArgs(root, tt.in)); diff != "" {
			t.Errorf("protectTextArgs(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTransformReadsStdin(t *testing.T) {
	env := newTestEnv(t)
	if got := env.mustRun(t, "-.. . -.-. --- -.. .\n", "decode"); got != "DECODE\n" {
		t.Fatalf("decode from stdin = %q", got)
	}
	if got := env.mustRun(t, "line one\nline two\n", "upper"); got != "LINE ONE\nLINE TWO\n" {
		t.Fatalf("upper from stdin = %q", got)
	}
}

func TestTransformWithoutInput(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "encode")
	if err == nil || !strings.Contains(err.Error(), "no input") {
		t.Fatalf("expected no-input error, got %v", err)
	}
}

func TestStatsCommand(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "", "stats", "one two three")
	if out != "Words: 3\nCharacters: 13\nReading time: 1s\n" {
		t.Fatalf("stats = %q", out)
	}
}

func TestTableCommand(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "", "table", "--category", "prosigns")
	for _, want := range []string{"SOS", "...---...", "Distress signal"} {
		if !strings.Contains(out, want) {
			t.Errorf("prosigns table missing %q", want)
		}
	}
	if strings.Contains(out, "Alfa") {
		t.Error("prosigns table should not list letters")
	}

	out = env.mustRun(t, "", "table", "--search", "wiskey")
	if !strings.Contains(out, "Whiskey") {
		t.Errorf("fuzzy search should find Whiskey:\n%s", out)
	}

	out = env.mustRun(t, "", "table", "--search", "qqqqqq")
	if !strings.Contains(out, "No matching characters") {
		t.Errorf("expected empty state, got:\n%s", out)
	}

	out = env.mustRun(t, "", "table", "-c", "numbers", "--timing")
	if !strings.Contains(out, "-----") || !strings.Contains(out, "Space between words") || !strings.Contains(out, "7 units") {
		t.Errorf("numbers with timing:\n%s", out)
	}

	if _, err := env.run(t, "", "table", "--category", "emoji"); err == nil {
		t.Fatal("unknown category should fail")
	}
}
