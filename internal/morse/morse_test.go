// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package morse

import (
	"strings"
	"testing"
	"unicode"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"space", " ", "/"},
		{"sos", "SOS", "... --- ..."},
		{"lowercase", "sos", "... --- ..."},
		{"two words", "Hi there", ".... .. / - .... . .-. ."},
		{"punctuation passes through", "Hi!", ".... .. !"},
		{"digits", "2026", "..--- ----- ..--- -...."},
		{"double space", "a  b", ".- / / -..."},
		{"non ascii", "é", "É"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"separator", "/", " "},
		{"sos", "... --- ...", "SOS"},
		{"two words", ".... .. / - .... . .-. .", "HI THERE"},
		{"unknown token", ".... .. !", "HI!"},
		{"malformed pattern", "......... ...", ".........S"},
		{"double space yields empty token", "...  ---", "SO"},
		{"word fragment", "hello ...", "helloS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.in); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForwardTableIsInjective(t *testing.T) {
	seen := make(map[string]rune, len(forward))
	for char, pattern := range forward {
		if prev, dup := seen[pattern]; dup {
			t.Fatalf("pattern %q shared by %q and %q", pattern, prev, char)
		}
		seen[pattern] = char
	}
	if len(reverse) != len(forward) {
		t.Fatalf("reverse table has %d entries, forward has %d", len(reverse), len(forward))
	}
}

func TestInvertRejectsDuplicates(t *testing.T) {
	_, err := invert(map[rune]string{'A': ".-", 'B': ".-"})
	if err == nil {
		t.Fatal("expected duplicate pattern error")
	}
}

func TestSymbolTableDomain(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		if _, ok := Lookup(r); !ok {
			t.Errorf("missing letter %q", r)
		}
	}
	for r := '0'; r <= '9'; r++ {
		if _, ok := Lookup(r); !ok {
			t.Errorf("missing digit %q", r)
		}
	}
	if p, _ := Lookup(' '); p != WordSeparator {
		t.Errorf("space maps to %q, want %q", p, WordSeparator)
	}
	for _, s := range Symbols() {
		if s.Char == ' ' {
			continue
		}
		if strings.Trim(s.Pattern, ".-") != "" {
			t.Errorf("pattern %q for %q contains symbols outside {.,-}", s.Pattern, s.Char)
		}
	}
}

func TestRoundTripSingleCharacters(t *testing.T) {
	for _, s := range Symbols() {
		if s.Char == ' ' {
			continue
		}
		in := string(unicode.ToLower(s.Char))
		if got := Decode(Encode(in)); got != string(s.Char) {
			t.Errorf("Decode(Encode(%q)) = %q, want %q", in, got, string(s.Char))
		}
	}
	if got := Decode(Encode(" ")); got != " " {
		t.Errorf("space round trip = %q", got)
	}
}

func TestRoundTripIsFixedPoint(t *testing.T) {
	inputs := []string{"Hello World", "sos 911", "The quick brown fox", "  padded  "}
	for _, in := range inputs {
		once := Decode(Encode(in))
		if once != strings.ToUpper(in) {
			t.Errorf("Decode(Encode(%q)) = %q, want %q", in, once, strings.ToUpper(in))
		}
		twice := Decode(Encode(once))
		if twice != once {
			t.Errorf("second round trip of %q = %q, want %q", in, twice, once)
		}
	}
}

func TestReverse(t *testing.T) {
	if r, ok := Reverse("/"); !ok || r != ' ' {
		t.Errorf("Reverse(/) = %q, %v", r, ok)
	}
	if _, ok := Reverse("......."); ok {
		t.Error("Reverse of unknown pattern reported a match")
	}
}
