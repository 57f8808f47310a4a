package strands

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
)

var log = logrus.WithField("component", "strands")

// FoundWord is a vocabulary word traceable on the board, with the path
// that spells it.
type FoundWord struct {
	Word string
	Path []Cell
	Cost int
}

// Solver finds every vocabulary word traceable on a board.
type Solver struct {
	board Board
	vocab *vocab.Trie[rune, int]
}

func NewSolver(board Board, v *vocab.Trie[rune, int]) *Solver {
	return &Solver{board: board, vocab: v}
}

// Words returns all traceable words of at least MinWordLength letters,
// cheapest (most common) first. The walk abandons a path as soon as the
// trie reports its letters are not the prefix of any word.
func (s *Solver) Words() []FoundWord {
	var found []FoundWord
	var cellSet [BoardHeight][BoardWidth]bool

	for _, start := range s.board.Cells() {
		path := []Cell{start}
		cellSet[start.Row][start.Col] = true
		found = s.extend(path, []rune{s.board.Letter(start)}, &cellSet, found)
		cellSet[start.Row][start.Col] = false
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Cost < found[j].Cost })
	log.WithField("words", len(found)).Debug("enumerated traceable words")
	return found
}

func (s *Solver) extend(path []Cell, word []rune, cellSet *[BoardHeight][BoardWidth]bool, found []FoundWord) []FoundWord {
	cost, result := s.vocab.Lookup(word)
	if result == vocab.Unknown {
		return found
	}
	if result == vocab.Found && len(word) >= MinWordLength {
		found = append(found, FoundWord{
			Word: string(word),
			Path: append([]Cell(nil), path...),
			Cost: cost,
		})
	}

	current := path[len(path)-1]
	for _, next := range s.board.neighbors(current) {
		if cellSet[next.Row][next.Col] {
			continue
		}
		cellSet[next.Row][next.Col] = true
		found = s.extend(
			append(path, next),
			append(word, s.board.Letter(next)),
			cellSet,
			found,
		)
		cellSet[next.Row][next.Col] = false
	}
	return found
}
