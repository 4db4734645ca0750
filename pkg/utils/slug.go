package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateStoreSlug normalizes a store name into a URL slug: accents are
// stripped, the result is lowercased and non-alphanumeric runs collapse
// into single hyphens ("Panadería San José " -> "panaderia-san-jose").
func GenerateStoreSlug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	slug := strings.ToLower(stripped)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
