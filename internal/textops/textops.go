// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package textops holds the pure text transformations offered by the editor
// and the statistics shown next to it.
package textops

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultReadingWPM is the reading speed used for the reading time estimate.
const DefaultReadingWPM = 200

// isSpace reports Unicode white space, plus the byte order mark that
// editors and web pages leave behind.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// fields splits text around runs of isSpace.
func fields(text string) []string {
	return strings.FieldsFunc(text, isSpace)
}

// Upper converts text to upper case using full Unicode case mapping.
func Upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

// Lower converts text to lower case using full Unicode case mapping.
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// CollapseSpaces replaces every run of whitespace with a single space and
// trims both ends.
func CollapseSpaces(text string) string {
	return strings.Join(fields(text), " ")
}

// Append adds pasted text to the end of the buffer.
func Append(text, pasted string) string {
	return text + pasted
}

// Stats summarises a buffer.
type Stats struct {
	Words       int
	Characters  int
	ReadingTime int // seconds
}

// Analyze counts words and characters and estimates the reading time at wpm
// words per minute. A non-positive wpm falls back to DefaultReadingWPM.
func Analyze(text string, wpm int) Stats {
	if wpm <= 0 {
		wpm = DefaultReadingWPM
	}
	words := len(fields(text))
	return Stats{
		Words:       words,
		Characters:  utf8.RuneCountInString(text),
		ReadingTime: int(math.Round(float64(words) / float64(wpm) * 60)),
	}
}
