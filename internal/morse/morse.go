// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package morse converts plain text to International Morse code and back.
//
// The transcoder is built from one fixed symbol table covering A-Z, 0-9
// and the space character (which maps to the word separator "/"). Both
// directions are total: characters or tokens without a mapping are passed
// through unchanged. All functions are pure and safe for concurrent use.
package morse

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordSeparator is the token emitted for a space character.
const WordSeparator = "/"

// tokenSeparator joins encoded tokens and splits them again on decode.
const tokenSeparator = " "

// Symbol is one entry of the transcoder's symbol table.
type Symbol struct {
	Char    rune
	Pattern string
}

var forward = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...",
	'8': "---..", '9': "----.", '0': "-----", ' ': WordSeparator,
}

var reverse = mustInvert(forward)

// mustInvert derives the pattern -> character table. A pattern shared by two
// characters would make decoding ambiguous, so it is rejected at init.
func mustInvert(table map[rune]string) map[string]rune {
	inv, err := invert(table)
	if err != nil {
		panic(err)
	}
	return inv
}

func invert(table map[rune]string) (map[string]rune, error) {
	inv := make(map[string]rune, len(table))
	for char, pattern := range table {
		if prev, dup := inv[pattern]; dup {
			return nil, fmt.Errorf("morse: pattern %q assigned to both %q and %q", pattern, prev, char)
		}
		inv[pattern] = char
	}
	return inv, nil
}

// Lookup returns the pattern for an upper-case character.
func Lookup(r rune) (string, bool) {
	p, ok := forward[r]
	return p, ok
}

// Reverse returns the character a pattern (or the word separator) stands for.
func Reverse(pattern string) (rune, bool) {
	r, ok := reverse[pattern]
	return r, ok
}

// Symbols returns a copy of the symbol table ordered by character.
func Symbols() []Symbol {
	out := make([]Symbol, 0, len(forward))
	for char, pattern := range forward {
		out = append(out, Symbol{Char: char, Pattern: pattern})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

// Encode upper-cases text and replaces every character with its Morse
// pattern, joining the tokens with single spaces. A space becomes "/".
// Characters outside the table are emitted unchanged as their own token.
func Encode(text string) string {
	if text == "" {
		return ""
	}
	upper := cases.Upper(language.Und).String(text)

	tokens := make([]string, 0, len(upper))
	for _, r := range upper {
		if pattern, ok := forward[r]; ok {
			tokens = append(tokens, pattern)
			continue
		}
		tokens = append(tokens, string(r))
	}
	return strings.Join(tokens, tokenSeparator)
}

// Decode splits morseText on single spaces and replaces every token with the
// character it encodes. Unknown tokens, including the empty tokens produced
// by runs of spaces, are copied through verbatim. The result has no
// separators between characters; "/" tokens turn back into spaces.
func Decode(morseText string) string {
	if morseText == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(morseText) / 2)
	for _, token := range strings.Split(morseText, tokenSeparator) {
		if char, ok := reverse[token]; ok {
			b.WriteRune(char)
			continue
		}
		b.WriteString(token)
	}
	return b.String()
}
