// Package strands finds words on the NYT Strands board: a 6×8 grid where
// words snake through 8-neighbor adjacency without reusing a cell.
package strands

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// BoardWidth is the number of columns on the board.
	BoardWidth = 6
	// BoardHeight is the number of rows on the board.
	BoardHeight = 8

	// MinWordLength is the shortest word the game accepts.
	MinWordLength = 4
)

// Cell addresses one letter on the board.
type Cell struct {
	Row int
	Col int
}

// Board is the 6×8 letter grid for one day's puzzle.
type Board struct {
	letters [BoardHeight][BoardWidth]rune
}

// NewBoard builds a board from its rows, e.g. ["punget", ...]. Letters are
// lowercased.
func NewBoard(rows []string) (Board, error) {
	var b Board
	if len(rows) != BoardHeight {
		return b, fmt.Errorf("board needs %d rows, got %d", BoardHeight, len(rows))
	}
	for i, row := range rows {
		runes := []rune(strings.ToLower(row))
		if len(runes) != BoardWidth {
			return b, fmt.Errorf("row %d needs %d letters, got %q", i, BoardWidth, row)
		}
		for j, r := range runes {
			if !unicode.IsLetter(r) {
				return b, fmt.Errorf("row %d contains non-letter %q", i, r)
			}
			b.letters[i][j] = r
		}
	}
	return b, nil
}

// Letter returns the letter at c.
func (b Board) Letter(c Cell) rune {
	return b.letters[c.Row][c.Col]
}

// Cells returns every cell on the board in row-major order.
func (b Board) Cells() []Cell {
	cells := make([]Cell, 0, BoardWidth*BoardHeight)
	for row := range BoardHeight {
		for col := range BoardWidth {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// neighbors returns the up-to-eight cells adjacent to c, diagonals
// included.
func (b Board) neighbors(c Cell) []Cell {
	cells := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if n.Row < 0 || n.Row >= BoardHeight || n.Col < 0 || n.Col >= BoardWidth {
				continue
			}
			cells = append(cells, n)
		}
	}
	return cells
}

func (b Board) String() string {
	rows := make([]string, BoardHeight)
	for i, row := range b.letters {
		rows[i] = string(row[:])
	}
	return strings.Join(rows, "\n")
}
