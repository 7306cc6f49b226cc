package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Compose returns s in NFC. The API mixes precomposed and decomposed
// umlauts; table alignment counts runes, so cells must be composed.
func Compose(s string) string {
	return norm.NFC.String(s)
}

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return Compose(strings.TrimSpace(s))
}
