package speller

import (
	"strings"
	"unicode"
)

// Normalize reduces a word to the form the lexicon stores: letter runes
// only, Turkish-lowercased. Custom dictionary entries go through this
// before being persisted or merged.
func Normalize(word string) string {
	return Lower(cleanWord(word))
}

// cleanWord reduces a whitespace token to its letter runes only, dropping
// punctuation and digits while keeping the Turkish letters intact. A token
// with no letters at all (a number, a lone dash) cleans to "" and is never
// spell-checked.
func cleanWord(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
