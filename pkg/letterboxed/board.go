// Package letterboxed solves the NYT Letter Boxed puzzle: chain words around
// a 4×3 ring of letters, consecutive letters never drawn from the same side,
// each word starting where the previous one ended, until every letter on the
// board has been used.
package letterboxed

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// NumSides is the number of sides on the board.
	NumSides = 4
	// LettersPerSide is the number of letters on each side.
	LettersPerSide = 3

	numLetters = NumSides * LettersPerSide
)

// Position addresses one letter on the board.
type Position struct {
	Side  int
	Index int
}

// Board is the ring of letters for one day's puzzle.
type Board struct {
	sides [NumSides][LettersPerSide]rune
}

// NewBoard builds a board from its four sides, e.g.
// ["lcv", "rwa", "eng", "tio"]. Letters are lowercased.
func NewBoard(sides []string) (Board, error) {
	var b Board
	if len(sides) != NumSides {
		return b, fmt.Errorf("board needs %d sides, got %d", NumSides, len(sides))
	}
	for i, side := range sides {
		runes := []rune(strings.ToLower(side))
		if len(runes) != LettersPerSide {
			return b, fmt.Errorf("side %d needs %d letters, got %q", i, LettersPerSide, side)
		}
		for j, r := range runes {
			if !unicode.IsLetter(r) {
				return b, fmt.Errorf("side %d contains non-letter %q", i, r)
			}
			b.sides[i][j] = r
		}
	}
	return b, nil
}

// Letter returns the letter at p.
func (b Board) Letter(p Position) rune {
	return b.sides[p.Side][p.Index]
}

// Positions returns every position on the board in side-major order.
func (b Board) Positions() []Position {
	ps := make([]Position, 0, numLetters)
	for side := range NumSides {
		for index := range LettersPerSide {
			ps = append(ps, Position{Side: side, Index: index})
		}
	}
	return ps
}

// movesFrom returns the positions a word may continue to: anywhere except
// the side it is currently on.
func (b Board) movesFrom(p Position) []Position {
	ps := make([]Position, 0, numLetters-LettersPerSide)
	for side := range NumSides {
		if side == p.Side {
			continue
		}
		for index := range LettersPerSide {
			ps = append(ps, Position{Side: side, Index: index})
		}
	}
	return ps
}

func (b Board) String() string {
	sides := make([]string, NumSides)
	for i, side := range b.sides {
		sides[i] = string(side[:])
	}
	return strings.Join(sides, " / ")
}

// letterSet tracks which board positions have been used, one bit per
// position.
type letterSet uint16

const fullLetterSet = letterSet(1<<numLetters - 1)

func positionBit(p Position) letterSet {
	return 1 << (p.Side*LettersPerSide + p.Index)
}

func (s letterSet) with(p Position) letterSet { return s | positionBit(p) }

func (s letterSet) union(o letterSet) letterSet { return s | o }

func (s letterSet) full() bool { return s == fullLetterSet }
