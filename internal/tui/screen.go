// Package tui draws the board and messages on a terminal using ANSI escapes.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// ANSI codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	white  = "\033[37m"

	clearScreen = "\033[H\033[2J"
)

// Screen writes game output. Color and clearing can be turned off for
// pipes and tests.
type Screen struct {
	w     io.Writer
	color bool
	clear bool
}

// New returns a Screen writing to w.
func New(w io.Writer, color, clear bool) *Screen {
	return &Screen{w: w, color: color, clear: clear}
}

// NewTerminal wraps f so escapes also render on Windows consoles.
func NewTerminal(f *os.File, color, clear bool) *Screen {
	return New(colorable.NewColorable(f), color, clear)
}

func (s *Screen) wrap(code, text string) string {
	if !s.color {
		return text
	}
	return code + text + reset
}

// Clear erases the screen and homes the cursor.
func (s *Screen) Clear() {
	if s.clear {
		fmt.Fprint(s.w, clearScreen)
	}
}

// Board draws the boxed board. Empty rows show underscores.
func (s *Screen) Board(b *game.Board) {
	fmt.Fprintln(s.w, "┏━━━━━━━━━━━━━┓")
	fmt.Fprintf(s.w, "┃ %s ┃\n", s.wrap(bold, "W O R D L E"))
	fmt.Fprintln(s.w, "┣━━━━━━━━━━━━━┫")
	fmt.Fprintln(s.w, "┃             ┃")
	for _, row := range b.Slots() {
		if row == nil {
			fmt.Fprintln(s.w, "┃  _ _ _ _ _  ┃")
			continue
		}
		var sb strings.Builder
		for _, t := range row {
			sb.WriteString(s.wrap(markColor(t.Mark), string(t.Letter)))
			sb.WriteByte(' ')
		}
		fmt.Fprintf(s.w, "┃  %s ┃\n", sb.String())
	}
	fmt.Fprintln(s.w, "┃             ┃")
	fmt.Fprintln(s.w, "┗━━━━━━━━━━━━━┛")
}

func markColor(m game.Mark) string {
	switch m {
	case game.MarkCorrect:
		return green
	case game.MarkPresent:
		return yellow
	default:
		return white
	}
}

// Line prints plain text.
func (s *Screen) Line(text string) {
	fmt.Fprintln(s.w, text)
}

// Error prints text in red.
func (s *Screen) Error(text string) {
	fmt.Fprintln(s.w, s.wrap(red, text))
}

// Success prints text in green.
func (s *Screen) Success(text string) {
	fmt.Fprintln(s.w, s.wrap(green, text))
}
