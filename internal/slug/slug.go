// Package slug converts between filesystem-friendly slugs and
// human-readable titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Slug converts a string into a lowercase-with-hyphens slug.
// It NFD-normalizes, strips combining marks, lowercases,
// converts whitespace to dashes, strips non-alphanumeric
// characters, and collapses consecutive dashes.
func Slug(s string) string {
	// NFD normalize to decompose characters.
	s = norm.NFD.String(s)

	// Strip combining (Mn) marks and lowercase.
	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	s = b.String()

	// Replace whitespace with dashes.
	b.Reset()
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune('-')
		} else {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Strip non-alphanumeric, non-dash characters.
	b.Reset()
	for _, r := range s {
		if r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Collapse consecutive dashes.
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	// Trim leading and trailing dashes.
	s = strings.Trim(s, "-")

	return s
}

var titleCaser = cases.Title(language.English)

// Humanize converts a slug into a title-cased phrase: hyphens and
// underscores become spaces and each word is capitalized.
// "al-naming-conventions" becomes "Al Naming Conventions".
func Humanize(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return titleCaser.String(s)
}

// Tokens splits a slug on hyphens and underscores and returns the tokens
// longer than the given length, in order.
func Tokens(s string, minLen int) []string {
	var tokens []string
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		if len(tok) > minLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
