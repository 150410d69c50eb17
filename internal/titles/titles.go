// Package titles derives filesystem-safe Title_Case names from raw
// recognition text.
package titles

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is used when the recognition text cleans down to nothing.
const Placeholder = "Unknown_Movie"

// invalidRunes are characters that are unsafe in filenames on at least one
// supported platform. They are dropped, matching the archive naming the rest
// of the pipeline relies on.
const invalidRunes = `<>:"/\|?*`

// Derive converts raw recognition text into the derived title: invalid and
// control characters removed, words capitalized, joined with underscores.
// Always returns a non-empty string free of path separators; Derive is
// idempotent.
func Derive(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidRunes, r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw)

	words := strings.FieldsFunc(cleaned, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_'
	})
	if len(words) == 0 {
		return Placeholder
	}

	caser := cases.Title(language.AmericanEnglish)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, "_")
}
