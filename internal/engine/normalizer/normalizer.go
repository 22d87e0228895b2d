package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps raw text to the canonical form the vectorizer was fitted
// on: lowercase, ASCII letters only, single spaces, no leading or trailing
// whitespace.
type Normalizer struct {
	FoldAccents bool
}

// New creates a Normalizer. With foldAccents set, accented letters are
// reduced to their base letter before non-letters are dropped, so "café"
// becomes "cafe" instead of "caf".
func New(foldAccents bool) *Normalizer {
	return &Normalizer{FoldAccents: foldAccents}
}

// Normalize returns the canonical form of text.
func (n *Normalizer) Normalize(text string) string {
	// A Caser keeps per-call state and must not be shared across goroutines.
	text = cases.Lower(language.Und).String(text)
	if n.FoldAccents {
		text = stripAccents(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case isWhitespace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// Normalize applies the default normalization (no accent folding).
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

var defaultNormalizer = New(false)

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isWhitespace matches Unicode white space plus the ASCII information
// separators U+001C..U+001F, which regex engines also treat as \s.
func isWhitespace(r rune) bool {
	if r >= 0x1C && r <= 0x1F {
		return true
	}
	return unicode.IsSpace(r)
}
