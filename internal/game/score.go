package game

import "strings"

// Score evaluates guess against secret, position by position.
//
// Pass 1 marks exact matches Correct. Pass 2 marks every other letter
// Present when it occurs anywhere in secret, Absent otherwise. Occurrences
// are not budgeted: a guess repeating a letter the secret holds once gets
// every copy marked.
//
// Both words are expected to be WordLength lowercase letters.
func Score(guess, secret string) ScoredGuess {
	g := []rune(guess)
	s := []rune(secret)

	var out ScoredGuess
	for i := 0; i < WordLength; i++ {
		out[i].Letter = g[i]
		if g[i] == s[i] {
			out[i].Mark = MarkCorrect
		}
	}
	for i := 0; i < WordLength; i++ {
		if out[i].Mark == MarkCorrect {
			continue
		}
		if strings.ContainsRune(secret, g[i]) {
			out[i].Mark = MarkPresent
		} else {
			out[i].Mark = MarkAbsent
		}
	}
	return out
}
