package speller

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// turkishAlphabet is the candidate alphabet for single-edit generation.
var turkishAlphabet = []rune("abcçdefgğhıijklmnoöprsştuüvyz")

// Correction describes one misspelled word in a checked text.
type Correction struct {
	Original    string   `json:"original"`
	Corrected   string   `json:"corrected"`
	Position    int      `json:"position"`
	Type        string   `json:"type"`
	Suggestions []string `json:"suggestions"`
}

// Result is the outcome of checking a whole text.
type Result struct {
	Original     string
	Corrected    string
	Corrections  []Correction
	Confidence   float64
	WordsChecked int
	ErrorsFound  int
}

// WordResult is the outcome of checking a single word.
type WordResult struct {
	Original    string
	Corrected   string
	Correct     bool
	Suggestions []string
}

// Checker spell-checks Turkish text against a Lexicon. It is safe for
// concurrent use; all mutable state lives in the lexicon.
type Checker struct {
	lex *Lexicon
}

func NewChecker(lex *Lexicon) *Checker {
	return &Checker{lex: lex}
}

// Ready reports whether the checker has any words to check against.
// With an empty lexicon the service runs in degraded mode and echoes
// input back unchanged.
func (c *Checker) Ready() bool { return c.lex.Size() > 0 }

// LexiconSize exposes the word count for the info endpoints.
func (c *Checker) LexiconSize() int { return c.lex.Size() }

// Lexicon returns the underlying lexicon so custom dictionary entries
// can be merged in at runtime.
func (c *Checker) Lexicon() *Lexicon { return c.lex }

type candidate struct {
	word string
	dist int
	freq int
}

// candidates collects known words reachable from the lowercased input:
// diacritic respellings first, then every single-edit variant over the
// Turkish alphabet. The result is ranked by edit distance, then lexicon
// frequency, then alphabetically.
func (c *Checker) candidates(word string) []candidate {
	seen := map[string]bool{word: true}
	var out []candidate
	add := func(w string) {
		if seen[w] {
			return
		}
		seen[w] = true
		if !c.lex.Contains(w) {
			return
		}
		out = append(out, candidate{
			word: w,
			dist: levenshtein.ComputeDistance(word, w),
			freq: c.lex.Freq(w),
		})
	}
	for _, v := range variants(word) {
		add(v)
	}
	for _, e := range edits1(word) {
		add(e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dist != out[j].dist {
			return out[i].dist < out[j].dist
		}
		if out[i].freq != out[j].freq {
			return out[i].freq > out[j].freq
		}
		return out[i].word < out[j].word
	})
	return out
}

// edits1 returns every string one edit away from word: deletes,
// transposes, replaces and inserts.
func edits1(word string) []string {
	runes := []rune(word)
	out := make([]string, 0, len(runes)*(2*len(turkishAlphabet)+2))

	for i := range runes {
		out = append(out, string(runes[:i])+string(runes[i+1:])) // delete
	}
	for i := 0; i+1 < len(runes); i++ { // transpose
		t := make([]rune, len(runes))
		copy(t, runes)
		t[i], t[i+1] = t[i+1], t[i]
		out = append(out, string(t))
	}
	for i := range runes { // replace
		for _, a := range turkishAlphabet {
			if runes[i] == a {
				continue
			}
			out = append(out, string(runes[:i])+string(a)+string(runes[i+1:]))
		}
	}
	for i := 0; i <= len(runes); i++ { // insert
		for _, a := range turkishAlphabet {
			out = append(out, string(runes[:i])+string(a)+string(runes[i:]))
		}
	}
	return out
}

// classify labels a correction "diacritic" when the two words differ only
// in Turkish diacritics, "spelling" otherwise.
func classify(original, corrected string) string {
	if Fold(original) == Fold(corrected) {
		return "diacritic"
	}
	return "spelling"
}

// CheckWord checks a single word and returns the best correction plus up
// to maxSuggestions ranked alternatives. Punctuation around the word is
// stripped before checking.
func (c *Checker) CheckWord(word string, maxSuggestions int) WordResult {
	clean := cleanWord(word)
	res := WordResult{Original: word, Corrected: word, Correct: true}
	if !c.Ready() || clean == "" {
		return res
	}
	lower := Lower(clean)
	if c.lex.Contains(lower) {
		return res
	}
	cands := c.candidates(lower)
	if len(cands) == 0 {
		res.Correct = false
		return res
	}
	res.Correct = false
	res.Corrected = cands[0].word
	for i := 0; i < len(cands) && i < maxSuggestions; i++ {
		res.Suggestions = append(res.Suggestions, cands[i].word)
	}
	return res
}

// Check spell-checks a whole text word by word. Tokens keep their
// surrounding punctuation; only the letter core of each token is checked
// and, when misspelled, replaced inside the token. Confidence is 1.0 for
// a clean text and decays with the error ratio down to a floor of 0.5.
func (c *Checker) Check(text string, maxSuggestions int) Result {
	res := Result{Original: text, Corrected: text, Corrections: []Correction{}}
	if !c.Ready() {
		return res
	}

	words := strings.Fields(strings.TrimSpace(text))
	res.WordsChecked = len(words)
	if len(words) == 0 {
		res.Confidence = 1.0
		return res
	}

	corrected := make([]string, 0, len(words))
	for i, w := range words {
		clean := cleanWord(w)
		if clean == "" {
			corrected = append(corrected, w)
			continue
		}
		lower := Lower(clean)
		if c.lex.Contains(lower) {
			corrected = append(corrected, w)
			continue
		}
		cands := c.candidates(lower)
		if len(cands) == 0 {
			// Unknown word with no plausible fix: leave it alone rather
			// than guessing.
			corrected = append(corrected, w)
			continue
		}
		best := cands[0].word
		res.ErrorsFound++

		sugs := make([]string, 0, maxSuggestions)
		for j := 0; j < len(cands) && j < maxSuggestions; j++ {
			sugs = append(sugs, cands[j].word)
		}
		res.Corrections = append(res.Corrections, Correction{
			Original:    clean,
			Corrected:   best,
			Position:    i,
			Type:        classify(lower, best),
			Suggestions: sugs,
		})
		corrected = append(corrected, strings.Replace(w, clean, best, 1))
	}

	res.Corrected = strings.Join(corrected, " ")
	if res.ErrorsFound == 0 {
		res.Confidence = 1.0
	} else {
		conf := 1.0 - (float64(res.ErrorsFound)/float64(len(words)))*0.5
		if conf < 0.5 {
			conf = 0.5
		}
		res.Confidence = conf
	}
	return res
}
