// Package crossword fills crossword grids from a weighted vocabulary,
// trying common words before obscure ones.
package crossword

import (
	"fmt"
	"strings"
)

// Square is one cell of a crossword board: empty, blocked, or a lowercase
// letter.
type Square rune

const (
	// Empty marks a cell awaiting a letter.
	Empty Square = '.'
	// Blocked marks a cell no word may cross.
	Blocked Square = '#'
)

// SquareFromRune parses one board character. Spaces and '.' are empty,
// '#' is blocked, letters are lowercased.
func SquareFromRune(r rune) (Square, error) {
	switch {
	case r == ' ' || r == '.':
		return Empty, nil
	case r == '#':
		return Blocked, nil
	case r >= 'a' && r <= 'z':
		return Square(r), nil
	case r >= 'A' && r <= 'Z':
		return Square(r - 'A' + 'a'), nil
	}
	return 0, fmt.Errorf("invalid board character %q", r)
}

// IsEmpty reports whether the square awaits a letter.
func (s Square) IsEmpty() bool { return s == Empty }

// IsBlocked reports whether the square is blocked.
func (s Square) IsBlocked() bool { return s == Blocked }

// Letter returns the square's letter, or false for empty and blocked
// squares.
func (s Square) Letter() (rune, bool) {
	if s.IsEmpty() || s.IsBlocked() {
		return 0, false
	}
	return rune(s), true
}

// Board is a rectangular crossword grid.
type Board struct {
	squares []Square
	rows    int
	cols    int
}

// ParseBoard reads a board from row strings, which must all be the same
// width.
func ParseBoard(rows []string) (Board, error) {
	if len(rows) == 0 {
		return Board{}, fmt.Errorf("board has no rows")
	}

	cols := len([]rune(rows[0]))
	b := Board{rows: len(rows), cols: cols, squares: make([]Square, 0, len(rows)*cols)}
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != cols {
			return Board{}, fmt.Errorf("row %d has %d columns, want %d", i, len(runes), cols)
		}
		for _, r := range runes {
			sq, err := SquareFromRune(r)
			if err != nil {
				return Board{}, fmt.Errorf("row %d: %w", i, err)
			}
			b.squares = append(b.squares, sq)
		}
	}
	return b, nil
}

// Rows returns the board height.
func (b Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b Board) Cols() int { return b.cols }

// At returns the square at (row, col).
func (b Board) At(row, col int) Square {
	return b.squares[row*b.cols+col]
}

func (b Board) set(row, col int, s Square) {
	b.squares[row*b.cols+col] = s
}

// clone copies the board so a fill attempt can diverge without disturbing
// its parent.
func (b Board) clone() Board {
	squares := make([]Square, len(b.squares))
	copy(squares, b.squares)
	return Board{squares: squares, rows: b.rows, cols: b.cols}
}

// Filled reports whether no empty squares remain.
func (b Board) Filled() bool {
	for _, s := range b.squares {
		if s.IsEmpty() {
			return false
		}
	}
	return true
}

// Render returns the board one row per line.
func (b Board) Render() string {
	lines := make([]string, b.rows)
	for r := range b.rows {
		runes := make([]rune, b.cols)
		for c := range b.cols {
			runes[c] = rune(b.At(r, c))
		}
		lines[r] = string(runes)
	}
	return strings.Join(lines, "\n")
}
