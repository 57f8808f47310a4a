package crossword

import "fmt"

// Direction is the orientation of a clue.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Clue is one answer slot on the board: a maximal run of unblocked squares.
type Clue struct {
	Direction Direction
	Row       int
	Col       int
	Length    int
}

func (c Clue) String() string {
	return fmt.Sprintf("%d,%d %s (%d)", c.Row, c.Col, c.Direction, c.Length)
}

// cell returns the board coordinates of the clue's i-th square.
func (c Clue) cell(i int) (row, col int) {
	if c.Direction == Across {
		return c.Row, c.Col + i
	}
	return c.Row + i, c.Col
}

// Clues derives the answer slots from the board's blocked squares. Runs of
// a single unblocked square do not form a clue in that direction.
func (b Board) Clues() []Clue {
	var clues []Clue

	for r := range b.rows {
		for start := 0; start < b.cols; {
			end := start
			for end < b.cols && !b.At(r, end).IsBlocked() {
				end++
			}
			if end-start >= 2 {
				clues = append(clues, Clue{Direction: Across, Row: r, Col: start, Length: end - start})
			}
			start = max(end, start+1)
		}
	}

	for c := range b.cols {
		for start := 0; start < b.rows; {
			end := start
			for end < b.rows && !b.At(end, c).IsBlocked() {
				end++
			}
			if end-start >= 2 {
				clues = append(clues, Clue{Direction: Down, Row: start, Col: c, Length: end - start})
			}
			start = max(end, start+1)
		}
	}

	return clues
}

// clueSquares reads the clue's current squares off the board.
func (b Board) clueSquares(c Clue) []Square {
	squares := make([]Square, c.Length)
	for i := range c.Length {
		row, col := c.cell(i)
		squares[i] = b.At(row, col)
	}
	return squares
}

// writeClue places a word into the clue's squares.
func (b Board) writeClue(c Clue, word []rune) {
	for i, r := range word {
		row, col := c.cell(i)
		b.set(row, col, Square(r))
	}
}
