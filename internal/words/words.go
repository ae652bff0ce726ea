// internal/words/words.go
//
// Dictionary of valid guesses for the game engine.
//
// Responsibilities:
//   - Load the embedded word list once at startup (no per-guess reload).
//   - Normalize entries to lowercase and keep only 5-letter a–z words.
//   - Answer membership queries and pick the secret word.
//
// A Dictionary is immutable after construction and safe for concurrent readers.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordle/apps/go-term/assets"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// ErrEmptyDictionary is returned when a secret is requested from an empty list.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// LoadError reports a word list source that could not be read.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Rand is the randomness PickRandom needs. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Dictionary is a sorted, de-duplicated set of lowercase words.
type Dictionary struct {
	list []string            // sorted, used for indexed selection
	set  map[string]struct{} // membership
}

// Load parses the word list embedded in the assets package.
func Load() (*Dictionary, error) {
	f, err := assets.OpenWordList()
	if err != nil {
		return nil, &LoadError{Source: assets.WordListName, Err: err}
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, &LoadError{Source: assets.WordListName, Err: err}
	}
	return d, nil
}

// Parse reads one word per line. Blank lines and '#' comments are skipped,
// as is anything that is not exactly game.WordLength lowercase letters
// after trimming and lowercasing.
func Parse(r io.Reader) (*Dictionary, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines = append(lines, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(lines), nil
}

// New builds a Dictionary from an in-memory list.
func New(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, raw := range list {
		w := Normalize(strings.TrimSpace(raw))
		if !Valid(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	sort.Strings(d.list)
	return d
}

// Normalize lowercases s.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Valid reports whether w is exactly game.WordLength lowercase ASCII letters.
func Valid(w string) bool {
	if len(w) != game.WordLength {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether word is in the dictionary. The input is
// lowercased first, so "CRANE" matches "crane"; " crane" does not.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[Normalize(word)]
	return ok
}

// PickRandom returns a uniformly chosen entry.
func (d *Dictionary) PickRandom(r Rand) (string, error) {
	if len(d.list) == 0 {
		return "", ErrEmptyDictionary
	}
	return d.list[r.IntN(len(d.list))], nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// At returns the i-th word in sorted order.
func (d *Dictionary) At(i int) string { return d.list[i] }

// Words returns a sorted copy of every entry.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.list...)
}
