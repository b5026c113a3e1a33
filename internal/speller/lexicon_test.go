package speller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconLoad(t *testing.T) {
	lex := NewLexicon()
	n, err := lex.Load(strings.NewReader(`
# comment line
merhaba 45
dünya

İstanbul
elma 26
`))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, lex.Size())

	assert.True(t, lex.Contains("merhaba"))
	assert.Equal(t, 45, lex.Freq("merhaba"))

	// Words without a count default to 1.
	assert.Equal(t, 1, lex.Freq("dünya"))

	// Turkish lowercasing applied at load time: İstanbul -> istanbul.
	assert.True(t, lex.Contains("istanbul"))
	assert.False(t, lex.Contains("İstanbul"))

	assert.False(t, lex.Contains("armut"))
	assert.Equal(t, 0, lex.Freq("armut"))
}

func TestLexiconLoadKeepsHigherCount(t *testing.T) {
	lex := NewLexicon()
	_, err := lex.Load(strings.NewReader("elma 5\nelma 20\nelma 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, lex.Size())
	assert.Equal(t, 20, lex.Freq("elma"))
}

func TestLexiconAdd(t *testing.T) {
	lex := NewLexicon()
	lex.Add("  Kubernetes ")
	lex.Add("")
	assert.Equal(t, 1, lex.Size())
	assert.True(t, lex.Contains("kubernetes"))
}

func TestLoadDefault(t *testing.T) {
	lex := NewLexicon()
	n := lex.LoadDefault()
	assert.Greater(t, n, 300)
	assert.True(t, lex.Contains("merhaba"))
	assert.True(t, lex.Contains("dünya"))
	assert.True(t, lex.Contains("yazım"))
}
