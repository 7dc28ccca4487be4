package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a url-safe slug from a display name. Used as the
// fallback when a client creates a category or genre without one.
func GenerateSlug(input string) string {
	ascii := removeDiacritics(input)

	slug := strings.ToLower(ascii)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = hyphenRuns.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// removeDiacritics folds accented characters to their base form
// (NFD decomposition, then dropping combining marks).
func removeDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}
