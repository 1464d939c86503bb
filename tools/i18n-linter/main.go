// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the Go sources. It reports
// keys missing from secondary locales (an error), keys no code refers to
// (a warning) and string literals that look like untranslated UI text.
//
// Keys built at runtime, such as i18n.T("notice." + name), count every key
// under that prefix as used.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

// usage collects the keys referenced from source.
type usage struct {
	keys     map[string]struct{}
	prefixes map[string]struct{}
}

// covers reports whether key is referenced directly or through a prefix.
func (u usage) covers(key string) bool {
	if _, ok := u.keys[key]; ok {
		return true
	}
	for p := range u.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")
	os.Exit(run(projectRoot, filepath.Join(projectRoot, localesDir)))
}

// run lints root against the locale files in dir and returns the exit code.
func run(root, dir string) int {
	used, err := findUsedKeys(root)
	if err != nil {
		fmt.Printf("❌ Error finding used keys: %v\n", err)
		return 1
	}
	fmt.Printf("✅ Found %d keys and %d key prefixes used in source code.\n", len(used.keys), len(used.prefixes))

	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		fmt.Printf("❌ Error loading primary locale '%s': %v\n", primaryLocale, err)
		return 1
	}
	fmt.Printf("✅ Loaded %d keys from primary locale (%s).\n\n", len(primaryKeys), primaryLocale)

	fmt.Println("--- Checking for Orphaned Keys (in primary locale but not used in code) ---")
	orphaned := orphanedKeys(primaryKeys, used)
	printList("Orphaned", orphaned, "  ✨ None found.")

	fmt.Println("\n--- Checking for Keys Used in Code but Missing from the Primary Locale ---")
	var undefined []string
	for key := range used.keys {
		if _, ok := primaryKeys[key]; !ok {
			undefined = append(undefined, key)
		}
	}
	sort.Strings(undefined)
	printList("Undefined", undefined, "  ✨ None found.")

	fmt.Println("\n--- Checking for Missing Keys (in primary locale but not in others) ---")
	localeFiles, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ Error finding locale files: %v\n", err)
		return 1
	}
	hasMissing := false
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		fmt.Printf("Checking %s:\n", file)
		secondary, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("  - ❌ Error loading %s: %v\n", file, err)
			hasMissing = true
			continue
		}
		missing := missingKeys(primaryKeys, secondary)
		if len(missing) > 0 {
			hasMissing = true
		}
		printList("Missing", missing, "  ✨ All keys present.")
	}

	fmt.Println("\n--- Checking for Potentially Untranslated Strings ---")
	untranslated, err := findUntranslatedStrings(root, primaryKeys)
	if err != nil {
		fmt.Printf("❌ Error finding untranslated strings: %v\n", err)
		return 1
	}
	if len(untranslated) == 0 {
		fmt.Println("  ✨ None found.")
	}
	literals := make([]string, 0, len(untranslated))
	for literal := range untranslated {
		literals = append(literals, literal)
	}
	sort.Strings(literals)
	for _, literal := range literals {
		loc := untranslated[literal][0]
		fmt.Printf("  - Potential: %q (found in %s:%d)\n", literal, loc.Filepath, loc.Line)
	}

	fmt.Println("\n--- Linter Finished ---")
	switch {
	case hasMissing || len(undefined) > 0:
		fmt.Println("❌ Found issues that need to be addressed.")
		return 1
	case len(orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
	return 0
}

func printList(label string, items []string, none string) {
	if len(items) == 0 {
		fmt.Println(none)
		return
	}
	for _, item := range items {
		fmt.Printf("  - %s: %s\n", label, item)
	}
}

func orphanedKeys(primary map[string]struct{}, used usage) []string {
	var out []string
	for key := range primary {
		if !used.covers(key) {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func missingKeys(primary, secondary map[string]struct{}) []string {
	var out []string
	for key := range primary {
		if _, ok := secondary[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// walkGoSources calls fn for every non-test .go file below root. The tools
// tree and directories the go tool ignores (leading "_" or ".", testdata,
// vendor) are skipped.
func walkGoSources(root string, fn func(path string, content []byte) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || name == "testdata" || name == "vendor" ||
				strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, content)
	})
}

var (
	// i18n.T("some.key") or a bare literal that looks like a key.
	keyUseRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z\._]+)"`)
	// i18n.T("some.prefix." + name)
	prefixUseRe = regexp.MustCompile(`i18n\.T\("([a-z_.]+\.)"\s*\+`)
)

// findUsedKeys scans all .go files for translation keys.
func findUsedKeys(root string) (usage, error) {
	u := usage{keys: map[string]struct{}{}, prefixes: map[string]struct{}{}}
	err := walkGoSources(root, func(_ string, content []byte) error {
		for _, m := range prefixUseRe.FindAllSubmatch(content, -1) {
			u.prefixes[string(m[1])] = struct{}{}
		}
		for _, m := range keyUseRe.FindAllSubmatch(content, -1) {
			switch {
			case len(m[1]) > 0:
				u.keys[string(m[1])] = struct{}{}
			case len(m[2]) > 0:
				u.keys[string(m[2])] = struct{}{}
			}
		}
		return nil
	})
	// A prefix is matched by keyUseRe too; it is not a key on its own.
	for p := range u.prefixes {
		delete(u.keys, p)
	}
	return u, err
}

var (
	callLiteralRe  = regexp.MustCompile(`([a-zA-Z0-9_]+\.)?([a-zA-Z0-9_]+)\("([^"]+)"`)
	keyShapeRe     = regexp.MustCompile(`^[a-z_]+\.[a-z\._]+$`)
	allCapsRe      = regexp.MustCompile(`^[A-Z_]+$`)
	formatStringRe = regexp.MustCompile(`^[\s%.,:;()#\d\w-]*%[\s\w-]*$`)
	sqlKeywords    = []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "PRAGMA ", "CREATE ", "ALTER ", "DROP ", "VACUUM", "OPTIMIZE "}
	// Calls whose string arguments are never shown to users.
	ignoredFuncs = map[string]struct{}{
		"Print": {}, "Println": {}, "Printf": {}, "Fatal": {}, "Fatalf": {}, "WriteString": {},
		"Debugf": {}, "Errorf": {}, "Getenv": {}, "WithKeys": {}, "WithHelp": {}, "Color": {},
	}
)

// findUntranslatedStrings returns string literals passed to calls that may
// produce user-facing output.
func findUntranslatedStrings(root string, allKeys map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)
	err := walkGoSources(root, func(path string, content []byte) error {
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range callLiteralRe.FindAllStringSubmatch(line, -1) {
				if _, skip := ignoredFuncs[m[2]]; skip {
					continue
				}
				if literal := m[3]; looksTranslatable(literal, allKeys) {
					untranslated[literal] = append(untranslated[literal], Location{Filepath: path, Line: i + 1})
				}
			}
		}
		return nil
	})
	return untranslated, err
}

func looksTranslatable(literal string, allKeys map[string]struct{}) bool {
	if _, ok := allKeys[literal]; ok {
		return false
	}
	if len(literal) < 4 || keyShapeRe.MatchString(literal) || allCapsRe.MatchString(literal) {
		return false
	}
	if strings.HasPrefix(literal, "file:") || strings.HasPrefix(literal, "http") || strings.HasPrefix(literal, "2006-") {
		return false
	}
	upper := strings.ToUpper(literal)
	for _, kw := range sqlKeywords {
		if strings.HasPrefix(upper, kw) {
			return false
		}
	}
	return !(formatStringRe.MatchString(literal) && !strings.Contains(literal, " "))
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
// Both flat "a.b: x" files and nested maps are accepted.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	case []interface{}:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
