package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacritics = runes.In(unicode.Mn)

// Fold maps s to the canonical comparison form: trimmed, lowercased, with
// diacritics stripped. "Développeur" and "DEVELOPPEUR" fold to the same
// string, which matters for French titles and city names.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// A fresh transformer per call: chained transformers carry internal
	// buffers and must not be shared across goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(diacritics), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
