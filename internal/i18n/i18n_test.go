// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	if av["en"] != "English" {
		t.Fatalf("unexpected display name for en: %q", av["en"])
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("notice.upper"); got != "Converted to uppercase!" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("cli.saved", 5, "savedText"); got != `Saved 5 characters to slot "savedText"` {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("tool.paste"); got != "Einfügen" {
		t.Fatalf("expected German 'Einfügen', got %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
}

// TestLocalesHaveSameKeys keeps the German file in step with the English one.
func TestLocalesHaveSameKeys(t *testing.T) {
	load := func(name string) map[string]string {
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		m := map[string]string{}
		if err := yaml.Unmarshal(data, &m); err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		return m
	}
	en := load("active.en.yaml")
	de := load("active.de.yaml")
	for k := range en {
		if _, ok := de[k]; !ok {
			t.Errorf("key %q missing from active.de.yaml", k)
		}
	}
	for k := range de {
		if _, ok := en[k]; !ok {
			t.Errorf("key %q missing from active.en.yaml", k)
		}
	}
}

func TestLocaleCode(t *testing.T) {
	if got := localeCode("active.de.yaml"); got != "de" {
		t.Fatalf("localeCode = %q", got)
	}
	if got := localeCode("README.md"); got != "" {
		t.Fatalf("localeCode(README.md) = %q", got)
	}
}
