package game

// Board is the append-only record of attempts. The zero value is an empty
// board of MaxGuesses rows.
type Board struct {
	rows   [MaxGuesses]ScoredGuess
	filled int
}

// NewBoard returns an empty board.
func NewBoard() *Board { return &Board{} }

// Append fills the first empty row.
func (b *Board) Append(g ScoredGuess) error {
	if b.filled >= MaxGuesses {
		return ErrBoardFull
	}
	b.rows[b.filled] = g
	b.filled++
	return nil
}

// Filled returns the number of non-empty rows.
func (b *Board) Filled() int { return b.filled }

// Slots returns every row in order; empty rows are nil. Filled rows are
// copies, so callers cannot modify the board through them.
func (b *Board) Slots() []*ScoredGuess {
	out := make([]*ScoredGuess, MaxGuesses)
	for i := 0; i < b.filled; i++ {
		row := b.rows[i]
		out[i] = &row
	}
	return out
}

// Rows returns copies of the filled rows only.
func (b *Board) Rows() []ScoredGuess {
	return append([]ScoredGuess(nil), b.rows[:b.filled]...)
}
