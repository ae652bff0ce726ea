// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create a game around a fixed secret and a read-only dictionary.
//   - Validate guesses (length, dictionary) without consuming an attempt.
//     Guesses are only lowercased; the caller strips line terminators.
//   - Score accepted guesses and record them on the board.
//   - Track state transitions: playing → won/lost.
//
// The engine never prints or logs; the caller learns everything from the
// returned Status or error.
package game

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dictionary is the membership test the engine validates guesses with.
// *words.Dictionary satisfies it.
type Dictionary interface {
	Contains(word string) bool
}

// Game holds the state of one session. It is not safe for concurrent use.
type Game struct {
	answer   string
	dict     Dictionary
	board    Board
	attempts int
	status   Status
}

// New starts a game with the given secret. The answer must itself be a
// dictionary word of WordLength letters.
func New(dict Dictionary, answer string) (*Game, error) {
	answer = normalize(answer)
	if utf8.RuneCountInString(answer) != WordLength || !dict.Contains(answer) {
		return nil, ErrInvalidAnswer
	}
	return &Game{
		answer: answer,
		dict:   dict,
		status: Status{State: StateInProgress},
	}, nil
}

// SubmitGuess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished (ErrGameOver).
//   - Guess must be exactly WordLength letters (ErrWrongLength).
//   - Guess must be in the dictionary (ErrNotInDictionary).
//
// Validation failures leave the board and attempt counter untouched.
//
// State transitions:
//   - guess == answer → won with the current attempt count.
//   - else attempts reach MaxGuesses → lost, revealing the answer.
func (g *Game) SubmitGuess(raw string) (Status, error) {
	if g.status.Over() {
		return g.status, ErrGameOver
	}
	guess := normalize(raw)
	if utf8.RuneCountInString(guess) != WordLength {
		return g.status, ErrWrongLength
	}
	if !g.dict.Contains(guess) {
		return g.status, ErrNotInDictionary
	}

	if err := g.board.Append(Score(guess, g.answer)); err != nil {
		return g.status, err
	}
	g.attempts++

	switch {
	case guess == g.answer:
		g.status = Status{State: StateWon, Attempts: g.attempts}
	case g.attempts >= MaxGuesses:
		g.status = Status{State: StateLost, Attempts: g.attempts, Answer: g.answer}
	default:
		g.status = Status{State: StateInProgress, Attempts: g.attempts}
	}
	return g.status, nil
}

// Status returns the status after the latest accepted guess.
func (g *Game) Status() Status { return g.status }

// Over reports whether the game has been won or lost.
func (g *Game) Over() bool { return g.status.Over() }

// Attempts returns the number of accepted guesses.
func (g *Game) Attempts() int { return g.attempts }

// Answer returns the secret word.
func (g *Game) Answer() string { return g.answer }

// Board returns a snapshot of the board.
func (g *Game) Board() *Board {
	b := g.board
	return &b
}

// normalize lowercases s. Whitespace is kept, so " crane" is six letters.
func normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}
