// Package query provides query normalization, domain synonym expansion, and
// intent classification for enrollment questions.
package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so "ó" becomes "o".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics and lowercases. Idempotent: normalizing an
// already-normalized string returns it unchanged.
func Normalize(text string) string {
	out, _, err := transform.String(stripMarks, text)
	if err != nil {
		out = text
	}
	return strings.ToLower(out)
}

// Tokenize normalizes text and splits it into letter/digit runs.
func Tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsAny reports whether text contains any of the given substrings.
func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
