package speller

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower lowercases a string using Turkish casing rules, so that
// dotted capital İ maps to "i" and dotless capital I maps to "ı".
// A plain strings.ToLower would turn "I" into "i" and corrupt
// every dotless-ı word in the lexicon.
func Lower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

var diacriticFold = strings.NewReplacer(
	"ç", "c",
	"ğ", "g",
	"ı", "i",
	"ö", "o",
	"ş", "s",
	"ü", "u",
)

// Fold strips the Turkish diacritics from an already lowercased word.
// Two words that fold to the same string differ only in diacritics,
// which is how corrections are classified as "diacritic" vs "spelling".
func Fold(s string) string {
	return diacriticFold.Replace(s)
}

// diacriticVariants maps each base letter to the letters it can stand in
// for when a writer types on an ASCII keyboard ("deasciified" input).
var diacriticVariants = map[rune][]rune{
	'c': {'c', 'ç'},
	'g': {'g', 'ğ'},
	'i': {'i', 'ı'},
	'o': {'o', 'ö'},
	's': {'s', 'ş'},
	'u': {'u', 'ü'},
}

// maxVariantPositions bounds the combinatorial expansion of diacritic
// candidates; beyond this many expandable letters the word is left to
// the edit-distance candidate generator.
const maxVariantPositions = 10

// variants returns every diacritic spelling of word (itself included).
// word must already be lowercased.
func variants(word string) []string {
	runes := []rune(word)
	positions := 0
	for _, r := range runes {
		if _, ok := diacriticVariants[r]; ok {
			positions++
		}
	}
	if positions == 0 || positions > maxVariantPositions {
		return nil
	}
	out := []string{""}
	for _, r := range runes {
		alts, ok := diacriticVariants[r]
		if !ok {
			alts = []rune{r}
		}
		next := make([]string, 0, len(out)*len(alts))
		for _, prefix := range out {
			for _, a := range alts {
				next = append(next, prefix+string(a))
			}
		}
		out = next
	}
	return out
}
