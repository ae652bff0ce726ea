// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Tile, ScoredGuess: one evaluated attempt.
//   - State, Status: where a game stands after each attempt.

package game

import (
	"errors"
	"fmt"
)

const (
	WordLength = 5 // letters per word
	MaxGuesses = 6 // board rows
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this position.
//   - "present": letter exists in the answer but not at this position.
//   - "absent":  letter does not exist in the answer at all.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Tile is one guessed letter and its mark.
type Tile struct {
	Letter rune
	Mark   Mark
}

// ScoredGuess is one evaluated attempt, in guess order.
type ScoredGuess [WordLength]Tile

// Word returns the guessed letters as a string.
func (s ScoredGuess) Word() string {
	rs := make([]rune, 0, WordLength)
	for _, t := range s {
		rs = append(rs, t.Letter)
	}
	return string(rs)
}

// Marks returns the marks in guess order.
func (s ScoredGuess) Marks() []Mark {
	out := make([]Mark, 0, WordLength)
	for _, t := range s {
		out = append(out, t.Mark)
	}
	return out
}

// State is the coarse phase of a game.
type State int

const (
	StateInProgress State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Status is derived after every accepted guess.
// Attempts counts accepted guesses; Answer is only set once the game is lost.
type Status struct {
	State    State
	Attempts int
	Answer   string
}

// Over reports whether the status is terminal.
func (s Status) Over() bool { return s.State != StateInProgress }

func (s Status) String() string {
	switch s.State {
	case StateWon:
		return fmt.Sprintf("won(%d)", s.Attempts)
	case StateLost:
		return fmt.Sprintf("lost(%s)", s.Answer)
	default:
		return "playing"
	}
}

// Player-facing validation errors. The game state is untouched when
// SubmitGuess returns one of these.
var (
	ErrWrongLength     = errors.New("guess must be 5 letters")
	ErrNotInDictionary = errors.New("not in word list")
)

// Contract violations: a correct driver never triggers these.
var (
	ErrGameOver      = errors.New("game finished")
	ErrBoardFull     = errors.New("board is full")
	ErrInvalidAnswer = errors.New("answer is not a valid word")
)

// IsGuessError reports whether err is a recoverable validation error,
// i.e. the caller should re-prompt for the same attempt.
func IsGuessError(err error) bool {
	return errors.Is(err, ErrWrongLength) || errors.Is(err, ErrNotInDictionary)
}
