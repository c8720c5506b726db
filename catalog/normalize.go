package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"strings"
	"unicode"
)

var folder = cases.Fold()

func foldContains(s, substr string) bool {
	return strings.Contains(folder.String(s), folder.String(substr))
}

// normalizeDestination lowercases, strips diacritics and drops everything that is
// not a letter or digit, so "Kōchi", "kochi" and "Ko-chi" compare equal.
func normalizeDestination(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
