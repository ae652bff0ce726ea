// Package play drives one game from line input to a final outcome.
//
// The driver owns all player-facing text; the engine only returns statuses
// and errors. End of input before the game ends is reported as ErrAborted,
// never as a win or loss.
package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// ErrAborted is returned when input closes before the game is decided.
var ErrAborted = errors.New("input closed, game aborted")

// Player-facing messages.
const (
	MsgWrongLength   = "Please enter a 5-letter word."
	MsgNotInWordList = "Word is not in word list."
	MsgIncorrect     = "Incorrect guess."
	MsgAborted       = "Input closed, game aborted!"
	MsgFirstTry      = "Correct! How did you do it?"
)

// Screen is what the driver needs from the presentation layer.
// *tui.Screen satisfies it.
type Screen interface {
	Clear()
	Board(b *game.Board)
	Line(text string)
	Error(text string)
	Success(text string)
}

// Run plays g to completion, reading one guess per line from in.
// It returns the terminal status, or ErrAborted if in ends first. Any other
// error is a defect (read failure or engine contract violation).
func Run(g *game.Game, in io.Reader, scr Screen) (game.Status, error) {
	br := bufio.NewReader(in)

	redraw := func() {
		scr.Clear()
		scr.Board(g.Board())
	}

	redraw()
	scr.Line("")

	for !g.Over() {
		st, err := nextGuess(g, br, scr, redraw)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				scr.Error(MsgAborted)
				log.Info().Int("attempts", g.Attempts()).Msg("input closed before the game ended")
			}
			return g.Status(), err
		}
		redraw()
		log.Debug().Int("attempt", st.Attempts).Str("state", st.State.String()).Msg("guess accepted")
		if !st.Over() {
			scr.Error(MsgIncorrect)
		}
	}

	st := g.Status()
	report(st, scr)
	return st, nil
}

// nextGuess reads lines until one is accepted by the engine. Rejected
// guesses redraw the board with the reason and read again.
func nextGuess(g *game.Game, br *bufio.Reader, scr Screen, redraw func()) (game.Status, error) {
	for {
		line, err := readLine(br)
		if err != nil {
			return game.Status{}, err
		}
		st, err := g.SubmitGuess(line)
		switch {
		case err == nil:
			return st, nil
		case errors.Is(err, game.ErrWrongLength):
			redraw()
			scr.Error(MsgWrongLength)
		case errors.Is(err, game.ErrNotInDictionary):
			redraw()
			scr.Error(MsgNotInWordList)
		default:
			return st, fmt.Errorf("submit guess: %w", err)
		}
	}
}

// readLine returns the next line without its terminator. Lines have no
// length limit; an over-long guess is rejected by the engine like any other
// wrong-length guess. A final line without a newline is still returned;
// ErrAborted only once nothing is left.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read guess: %w", err)
		}
		if line == "" {
			return "", ErrAborted
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// report prints the final outcome.
func report(st game.Status, scr Screen) {
	switch st.State {
	case game.StateWon:
		if st.Attempts == 1 {
			scr.Success(MsgFirstTry)
			return
		}
		scr.Success(fmt.Sprintf("Correct! You guessed the word in %d guesses.", st.Attempts))
	case game.StateLost:
		scr.Error(fmt.Sprintf("You didn't guess the word in %d attempts.\nThe word was %q.\nBetter luck next time!",
			game.MaxGuesses, st.Answer))
	}
}
