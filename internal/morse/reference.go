// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package morse

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Category groups reference entries for display.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryLetters     Category = "letters"
	CategoryNumbers     Category = "numbers"
	CategoryPunctuation Category = "punctuation"
	CategoryProsigns    Category = "prosigns"
)

// Categories lists the concrete categories in display order.
var Categories = []Category{CategoryLetters, CategoryNumbers, CategoryPunctuation, CategoryProsigns}

// ParseCategory maps a user supplied name to a Category. The empty string
// selects CategoryAll.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryAll, true
	}
	if c == CategoryAll {
		return c, true
	}
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Entry is one row of the reference table. Letters, numbers and punctuation
// carry a Pronunciation; prosigns carry a Description instead.
type Entry struct {
	Category      Category
	Char          string
	Pattern       string
	Pronunciation string
	Description   string
}

// Label returns the spoken name or description of the entry.
func (e Entry) Label() string {
	if e.Pronunciation != "" {
		return e.Pronunciation
	}
	return e.Description
}

// TimingRule describes one element of International Morse timing.
type TimingRule struct {
	Unit  string
	Units int
}

var reference = []Entry{
	{CategoryLetters, "A", ".-", "Alfa", ""},
	{CategoryLetters, "B", "-...", "Bravo", ""},
	{CategoryLetters, "C", "-.-.", "Charlie", ""},
	{CategoryLetters, "D", "-..", "Delta", ""},
	{CategoryLetters, "E", ".", "Echo", ""},
	{CategoryLetters, "F", "..-.", "Foxtrot", ""},
	{CategoryLetters, "G", "--.", "Golf", ""},
	{CategoryLetters, "H", "....", "Hotel", ""},
	{CategoryLetters, "I", "..", "India", ""},
	{CategoryLetters, "J", ".---", "Juliett", ""},
	{CategoryLetters, "K", "-.-", "Kilo", ""},
	{CategoryLetters, "L", ".-..", "Lima", ""},
	{CategoryLetters, "M", "--", "Mike", ""},
	{CategoryLetters, "N", "-.", "November", ""},
	{CategoryLetters, "O", "---", "Oscar", ""},
	{CategoryLetters, "P", ".--.", "Papa", ""},
	{CategoryLetters, "Q", "--.-", "Quebec", ""},
	{CategoryLetters, "R", ".-.", "Romeo", ""},
	{CategoryLetters, "S", "...", "Sierra", ""},
	{CategoryLetters, "T", "-", "Tango", ""},
	{CategoryLetters, "U", "..-", "Uniform", ""},
	{CategoryLetters, "V", "...-", "Victor", ""},
	{CategoryLetters, "W", ".--", "Whiskey", ""},
	{CategoryLetters, "X", "-..-", "X-ray", ""},
	{CategoryLetters, "Y", "-.--", "Yankee", ""},
	{CategoryLetters, "Z", "--..", "Zulu", ""},

	{CategoryNumbers, "1", ".----", "One", ""},
	{CategoryNumbers, "2", "..---", "Two", ""},
	{CategoryNumbers, "3", "...--", "Three", ""},
	{CategoryNumbers, "4", "....-", "Four", ""},
	{CategoryNumbers, "5", ".....", "Five", ""},
	{CategoryNumbers, "6", "-....", "Six", ""},
	{CategoryNumbers, "7", "--...", "Seven", ""},
	{CategoryNumbers, "8", "---..", "Eight", ""},
	{CategoryNumbers, "9", "----.", "Nine", ""},
	{CategoryNumbers, "0", "-----", "Zero", ""},

	{CategoryPunctuation, ".", ".-.-.-", "Period", ""},
	{CategoryPunctuation, ",", "--..--", "Comma", ""},
	{CategoryPunctuation, "?", "..--..", "Question Mark", ""},
	{CategoryPunctuation, "!", "-.-.--", "Exclamation", ""},
	{CategoryPunctuation, "'", ".----.", "Apostrophe", ""},
	{CategoryPunctuation, "\"", ".-..-.", "Quotation Mark", ""},
	{CategoryPunctuation, "(", "-.--.", "Left Parenthesis", ""},
	{CategoryPunctuation, ")", "-.--.-", "Right Parenthesis", ""},
	{CategoryPunctuation, "&", ".-...", "Ampersand", ""},
	{CategoryPunctuation, ":", "---...", "Colon", ""},
	{CategoryPunctuation, ";", "-.-.-.", "Semicolon", ""},
	{CategoryPunctuation, "/", "-..-.", "Slash", ""},
	{CategoryPunctuation, "_", "..--.-", "Underscore", ""},
	{CategoryPunctuation, "@", ".--.-.", "At Sign", ""},
	{CategoryPunctuation, "=", "-...-", "Equals", ""},
	{CategoryPunctuation, "+", ".-.-.", "Plus", ""},
	{CategoryPunctuation, "-", "-....-", "Hyphen", ""},
	{CategoryPunctuation, "$", "...-..-", "Dollar", ""},

	{CategoryProsigns, "AR", ".-.-.", "", "End of message"},
	{CategoryProsigns, "AS", ".-...", "", "Wait"},
	{CategoryProsigns, "BT", "-...-", "", "Break"},
	{CategoryProsigns, "CT", "-.-.-", "", "Start transmission"},
	{CategoryProsigns, "SK", "...-.-", "", "End of contact"},
	{CategoryProsigns, "SOS", "...---...", "", "Distress signal"},
}

var timing = []TimingRule{
	{"Dot duration", 1},
	{"Dash duration", 3},
	{"Space between dots/dashes", 1},
	{"Space between letters", 3},
	{"Space between words", 7},
}

// Reference returns a copy of the full reference table in display order.
func Reference() []Entry {
	out := make([]Entry, len(reference))
	copy(out, reference)
	return out
}

// Timing returns the International Morse timing rules.
func Timing() []TimingRule {
	out := make([]TimingRule, len(timing))
	copy(out, timing)
	return out
}

// Counts returns the number of entries per category, including CategoryAll.
func Counts(entries []Entry) map[Category]int {
	counts := map[Category]int{CategoryAll: len(entries)}
	for _, e := range entries {
		counts[e.Category]++
	}
	return counts
}

// fuzzyMinLen is the shortest query that is also matched by edit distance.
const fuzzyMinLen = 4

// fuzzyMaxDistance bounds the edit distance of a fuzzy label match.
const fuzzyMaxDistance = 2

// Search filters entries by category and query. The query matches a
// character or label case-insensitively, or a pattern verbatim. Queries of
// four or more characters also match labels within a small edit distance so
// that "wiskey" still finds W.
func Search(entries []Entry, query string, category Category) []Entry {
	q := strings.TrimSpace(query)
	lq := strings.ToLower(q)

	var out []Entry
	for _, e := range entries {
		if category != CategoryAll && category != "" && e.Category != category {
			continue
		}
		if q == "" || matches(e, q, lq) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, q, lq string) bool {
	if strings.Contains(strings.ToLower(e.Char), lq) || strings.Contains(e.Pattern, q) {
		return true
	}
	label := strings.ToLower(e.Label())
	if label == "" {
		return false
	}
	if strings.Contains(label, lq) {
		return true
	}
	if len([]rune(lq)) < fuzzyMinLen {
		return false
	}
	for _, word := range strings.Fields(label) {
		if levenshtein.ComputeDistance(word, lq) <= fuzzyMaxDistance {
			return true
		}
	}
	return false
}
