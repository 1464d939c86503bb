// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated notices and labels shown by the CLI
// and the TUI. Translation files are embedded YAML loaded through go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is used when no language was configured.
const DefaultLang = "en"

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded locale and selects lang.
func Init(lang string) {
	if lang == "" {
		lang = DefaultLang
	}
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}

	mu.Lock()
	bundle = b
	localizer = i18n.NewLocalizer(b, lang)
	current = lang
	mu.Unlock()
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied to the translation with fmt.Sprintf.
// Unknown IDs are returned unchanged.
func T(messageID string, args ...any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l == nil {
		Init(DefaultLang)
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// GetAvailableLocales maps every embedded locale code to its display name.
func GetAvailableLocales() map[string]string {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		Init(DefaultLang)
		mu.RLock()
		b = bundle
		mu.RUnlock()
	}

	out := make(map[string]string)
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := localeCode(f.Name())
		if code == "" {
			continue
		}
		name, err := i18n.NewLocalizer(b, code).Localize(&i18n.LocalizeConfig{MessageID: "language.self"})
		if err != nil {
			name = code
		}
		out[code] = name
	}
	return out
}

// localeCode extracts "de" from "active.de.yaml".
func localeCode(filename string) string {
	parts := strings.Split(filename, ".")
	if len(parts) != 3 || parts[2] != "yaml" {
		return ""
	}
	return parts[1]
}
