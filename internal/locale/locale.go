// Package locale resolves message codes to localized text. Phrases live in a
// JSON bundle keyed by language, then by code.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Bundle holds every phrase for every language.
type Bundle struct {
	messages map[string]map[string]string
}

// Load reads a bundle from a JSON file shaped as
// {"English": {"welcome": "...", ...}, "Russian": {...}}.
func Load(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale: read %s: %w", path, err)
	}
	var messages map[string]map[string]string
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("locale: parse %s: %w", path, err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("locale: %s defines no languages", path)
	}
	return &Bundle{messages: messages}, nil
}

// Resolve returns the phrase for a code in the given language. Missing
// entries fall back to the code itself so a gap is visible, not silent.
func (b *Bundle) Resolve(language, code string) string {
	if phrases, ok := b.messages[language]; ok {
		if text, ok := phrases[code]; ok {
			return text
		}
	}
	return code
}

// Resolvef resolves a code and applies fmt arguments to the phrase.
func (b *Bundle) Resolvef(language, code string, args ...any) string {
	return fmt.Sprintf(b.Resolve(language, code), args...)
}

// Languages lists the languages the bundle covers, sorted.
func (b *Bundle) Languages() []string {
	langs := make([]string, 0, len(b.messages))
	for lang := range b.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Validate checks that every required language defines every required code.
func (b *Bundle) Validate(languages, codes []string) error {
	for _, lang := range languages {
		phrases, ok := b.messages[lang]
		if !ok {
			return fmt.Errorf("locale: language %q missing from bundle", lang)
		}
		for _, code := range codes {
			if _, ok := phrases[code]; !ok {
				return fmt.Errorf("locale: language %q missing code %q", lang, code)
			}
		}
	}
	return nil
}
