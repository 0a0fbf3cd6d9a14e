package codegen

import (
	"strings"
	"unicode"
)

// NormalizeName reduces a raw full name to its canonical word form:
// uppercase, Latin letters only, single spaces. Digits, punctuation and
// diacritics are removed (diacritics are not folded to base letters).
// Returns nil when no usable letters remain.
func NormalizeName(raw string) []string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	words := strings.Fields(b.String())
	if len(words) == 0 {
		return nil
	}
	return words
}

// safeChar returns the i-th character of a word or "" when out of bounds.
// Words are ASCII-only after NormalizeName, so byte indexing is safe.
func safeChar(word string, i int) string {
	if i >= 0 && i < len(word) {
		return word[i : i+1]
	}
	return ""
}

// lastChar returns the final character of a word or "".
func lastChar(word string) string {
	if word == "" {
		return ""
	}
	return word[len(word)-1:]
}

// midChar returns the floor-midpoint character of a word.
// Words shorter than 3 characters fall back to the second character.
func midChar(word string) string {
	if len(word) < 3 {
		return safeChar(word, 1)
	}
	return word[len(word)/2 : len(word)/2+1]
}
