package speller

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Lexicon is the set of known-correct words with an occurrence count per
// word. Reads vastly outnumber writes (writes only happen when an admin
// adds a custom dictionary entry), hence the RWMutex.
type Lexicon struct {
	mu    sync.RWMutex
	words map[string]int
}

func NewLexicon() *Lexicon {
	return &Lexicon{words: make(map[string]int)}
}

// Load reads a word list from r and merges it into the lexicon. Each line
// is either "word" or "word count"; blank lines and lines starting with '#'
// are skipped. Words are normalized with Turkish lowercasing. Returns the
// number of lines merged.
func (l *Lexicon) Load(r io.Reader) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		word := Lower(fields[0])
		count := 1
		if len(fields) > 1 {
			if c, err := strconv.Atoi(fields[1]); err == nil && c > 0 {
				count = c
			}
		}
		if l.words[word] < count {
			l.words[word] = count
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("scan word list: %w", err)
	}
	return n, nil
}

// Add inserts a single word (custom dictionary entries). The word is
// normalized the same way Load normalizes it.
func (l *Lexicon) Add(word string) {
	word = Lower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	l.mu.Lock()
	if l.words[word] < 1 {
		l.words[word] = 1
	}
	l.mu.Unlock()
}

// Contains reports whether the lowercased word is known.
func (l *Lexicon) Contains(word string) bool {
	l.mu.RLock()
	_, ok := l.words[word]
	l.mu.RUnlock()
	return ok
}

// Freq returns the occurrence count for a lowercased word, 0 if unknown.
func (l *Lexicon) Freq(word string) int {
	l.mu.RLock()
	f := l.words[word]
	l.mu.RUnlock()
	return f
}

// Size returns the number of distinct words.
func (l *Lexicon) Size() int {
	l.mu.RLock()
	n := len(l.words)
	l.mu.RUnlock()
	return n
}
