package speller

import (
	_ "embed"
	"strings"
)

// The embedded list keeps the service functional when neither an S3 object
// nor a local word list is configured. It covers a few hundred of the most
// frequent Turkish words; deployments should point LEXICON_PATH or the
// LEXICON_S3_* variables at a full-size list.
//
//go:embed data/words_tr.txt
var embeddedWords string

// LoadDefault merges the embedded Turkish word list into the lexicon and
// returns the number of words merged.
func (l *Lexicon) LoadDefault() int {
	n, _ := l.Load(strings.NewReader(embeddedWords))
	return n
}
