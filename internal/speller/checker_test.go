package speller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChecker(t *testing.T, words string) *Checker {
	t.Helper()
	lex := NewLexicon()
	_, err := lex.Load(strings.NewReader(words))
	require.NoError(t, err)
	return NewChecker(lex)
}

func TestCheckWordCorrect(t *testing.T) {
	c := testChecker(t, "merhaba 45\ndünya 135\n")

	res := c.CheckWord("merhaba", 5)
	assert.True(t, res.Correct)
	assert.Equal(t, "merhaba", res.Corrected)
	assert.Empty(t, res.Suggestions)

	// Case and punctuation do not flag a word.
	res = c.CheckWord("Merhaba!", 5)
	assert.True(t, res.Correct)
}

func TestCheckWordDiacritic(t *testing.T) {
	c := testChecker(t, "dünya 135\n")

	res := c.CheckWord("dunya", 5)
	assert.False(t, res.Correct)
	assert.Equal(t, "dünya", res.Corrected)
	assert.Contains(t, res.Suggestions, "dünya")
}

func TestCheckWordSingleEdit(t *testing.T) {
	c := testChecker(t, "merhaba 45\n")

	// One extra letter.
	res := c.CheckWord("merhabaa", 5)
	assert.False(t, res.Correct)
	assert.Equal(t, "merhaba", res.Corrected)

	// Transposed letters.
	res = c.CheckWord("mehraba", 5)
	assert.False(t, res.Correct)
	assert.Equal(t, "merhaba", res.Corrected)
}

func TestCheckWordNoCandidate(t *testing.T) {
	c := testChecker(t, "merhaba 45\n")

	res := c.CheckWord("xyzqw", 5)
	assert.False(t, res.Correct)
	// No plausible fix: the word is returned unchanged.
	assert.Equal(t, "xyzqw", res.Corrected)
	assert.Empty(t, res.Suggestions)
}

func TestCandidateRanking(t *testing.T) {
	// "ev" (distance 1, freq 170) should outrank "et" (distance 1, freq 36)
	// for the input "e", and both outrank any distance-2 word.
	c := testChecker(t, "ev 170\net 36\nelma 26\n")

	res := c.CheckWord("evv", 5)
	require.False(t, res.Correct)
	assert.Equal(t, "ev", res.Corrected)

	cands := c.candidates("e")
	require.NotEmpty(t, cands)
	assert.Equal(t, "ev", cands[0].word)
}

func TestMaxSuggestionsRespected(t *testing.T) {
	c := testChecker(t, "al 10\nel 10\nil 10\nol 10\nöl 10\n")

	res := c.CheckWord("ql", 2)
	assert.False(t, res.Correct)
	assert.Len(t, res.Suggestions, 2)
}

func TestCheckText(t *testing.T) {
	c := testChecker(t, "merhaba 45\ndünya 135\nnasılsın 30\n")

	res := c.Check("Merhaba dunya, nasılsın?", 5)
	assert.Equal(t, 3, res.WordsChecked)
	assert.Equal(t, 1, res.ErrorsFound)
	require.Len(t, res.Corrections, 1)

	corr := res.Corrections[0]
	assert.Equal(t, "dunya", corr.Original)
	assert.Equal(t, "dünya", corr.Corrected)
	assert.Equal(t, 1, corr.Position)
	assert.Equal(t, "diacritic", corr.Type)

	// Punctuation around the misspelled token survives the replacement.
	assert.Equal(t, "Merhaba dünya, nasılsın?", res.Corrected)

	// 1 error over 3 words: 1 - (1/3)*0.5.
	assert.InDelta(t, 1.0-0.5/3.0, res.Confidence, 1e-9)
}

func TestCheckTextClean(t *testing.T) {
	c := testChecker(t, "merhaba 45\ndünya 135\n")

	res := c.Check("merhaba dünya", 5)
	assert.Equal(t, 0, res.ErrorsFound)
	assert.Empty(t, res.Corrections)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, "merhaba dünya", res.Corrected)
}

func TestCheckTextConfidenceFloor(t *testing.T) {
	c := testChecker(t, "ev 170\n")

	// Every word wrong: confidence bottoms out at 0.5.
	res := c.Check("evv evv evv evv", 5)
	assert.Equal(t, 4, res.ErrorsFound)
	assert.Equal(t, 0.5, res.Confidence)
}

func TestCheckTextSkipsNonLetters(t *testing.T) {
	c := testChecker(t, "lira 10\n")

	res := c.Check("100 lira !!", 5)
	assert.Equal(t, 3, res.WordsChecked)
	assert.Equal(t, 0, res.ErrorsFound)
	assert.Equal(t, "100 lira !!", res.Corrected)
}

func TestCheckDegraded(t *testing.T) {
	c := NewChecker(NewLexicon())
	assert.False(t, c.Ready())

	res := c.Check("herhangi bir metin", 5)
	assert.Equal(t, "herhangi bir metin", res.Corrected)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, 0, res.WordsChecked)

	wr := c.CheckWord("kelime", 5)
	assert.Equal(t, "kelime", wr.Corrected)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, "diacritic", classify("dunya", "dünya"))
	assert.Equal(t, "diacritic", classify("yanlis", "yanlış"))
	assert.Equal(t, "spelling", classify("merhabaa", "merhaba"))
}

func TestEdits1(t *testing.T) {
	edits := edits1("ev")
	set := make(map[string]bool, len(edits))
	for _, e := range edits {
		set[e] = true
	}
	assert.True(t, set["v"], "delete first rune")
	assert.True(t, set["ve"], "transpose")
	assert.True(t, set["et"], "replace")
	assert.True(t, set["evi"], "insert at end")
	assert.True(t, set["öv"], "replace with Turkish letter")
}
