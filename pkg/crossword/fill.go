package crossword

import (
	"context"
	"iter"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
)

var log = logrus.WithField("component", "crossword")

// candidateCap bounds how many words the filler inspects per clue when
// counting options and building per-cell letter sets. Fully constrained
// clues need only one; wide-open clues are expensive to enumerate in full
// and the first few hundred candidates constrain the letter sets plenty.
const candidateCap = 256

// Filler fills boards from a weighted vocabulary, placing common (cheap)
// words before obscure ones so the best fills surface first.
type Filler struct {
	vocab *vocab.Trie[rune, int]
}

func NewFiller(v *vocab.Trie[rune, int]) *Filler {
	return &Filler{vocab: v}
}

// cluePattern compiles the clue's current squares into a query pattern:
// letters become fixed constraints, empty squares wildcards.
func cluePattern(b Board, c Clue) vocab.Pattern[rune] {
	entries := make([]*rune, c.Length)
	for i, sq := range b.clueSquares(c) {
		if r, ok := sq.Letter(); ok {
			entries[i] = &r
		}
	}
	return vocab.CompilePattern(entries)
}

// candidates returns up to candidateCap words that fit the clue, cheapest
// first, skipping words already placed elsewhere on the board.
func (f *Filler) candidates(b Board, c Clue, used map[string]bool) [][]rune {
	pattern := cluePattern(b, c)

	var words [][]rune
	for word := range f.vocab.AllOrdered(&pattern) {
		if used[string(word)] {
			continue
		}
		words = append(words, word)
		if len(words) >= candidateCap {
			break
		}
	}
	return words
}

// viable reports whether every unfilled clue still admits at least one
// word, checking crossing clues agree letter by letter. For each cell it
// intersects the letters its across candidates allow with the letters its
// down candidates allow; an empty intersection means no pair of words can
// ever meet there and the branch is dead.
func (f *Filler) viable(b Board, clues []Clue, used map[string]bool) bool {
	type cell struct{ row, col int }
	allowed := make(map[cell]*charSet)

	for _, clue := range clues {
		squares := b.clueSquares(clue)
		unfilled := false
		for _, sq := range squares {
			if sq.IsEmpty() {
				unfilled = true
				break
			}
		}
		if !unfilled {
			continue
		}

		words := f.candidates(b, clue, used)
		if len(words) == 0 {
			return false
		}

		for i := range clue.Length {
			if !squares[i].IsEmpty() {
				continue
			}
			cs := newCharSet()
			for _, word := range words {
				cs.add(word[i])
				if cs.isFull() {
					break
				}
			}

			row, col := clue.cell(i)
			key := cell{row, col}
			if existing, ok := allowed[key]; ok {
				existing.intersect(cs)
				if existing.isEmpty() {
					return false
				}
			} else {
				allowed[key] = cs
			}
		}
	}
	return true
}

// nextClue picks the unfilled clue with the fewest candidates, so the
// search branches where it is most constrained. Returns false when every
// clue is filled.
func (f *Filler) nextClue(b Board, clues []Clue, used map[string]bool) (Clue, bool) {
	var best Clue
	bestCount := math.MaxInt
	found := false

	for _, clue := range clues {
		unfilled := false
		for _, sq := range b.clueSquares(clue) {
			if sq.IsEmpty() {
				unfilled = true
				break
			}
		}
		if !unfilled {
			continue
		}

		words := f.candidates(b, clue, used)
		if len(words) < bestCount {
			best, bestCount, found = clue, len(words), true
		}
	}
	return best, found
}

// Fill lazily streams complete fills of the board, best words first. The
// caller stops pulling when it has seen enough.
func (f *Filler) Fill(ctx context.Context, board Board) iter.Seq[Board] {
	return func(yield func(Board) bool) {
		clues := board.Clues()
		if len(clues) == 0 {
			return
		}
		log.WithFields(logrus.Fields{
			"rows":  board.Rows(),
			"cols":  board.Cols(),
			"clues": len(clues),
		}).Debug("starting fill")

		used := make(map[string]bool)
		for _, clue := range clues {
			word, complete := filledWord(board, clue)
			if !complete {
				continue
			}
			// Pre-filled clues must be real, distinct words too.
			if _, result := f.vocab.Lookup([]rune(word)); result != vocab.Found {
				return
			}
			if used[word] {
				return
			}
			used[word] = true
		}

		f.fill(ctx, board, clues, used, yield)
	}
}

// fill is the backtracking core: place a word in the most constrained
// clue, prune via viable, recurse. Returns false once the caller has
// stopped pulling.
func (f *Filler) fill(ctx context.Context, b Board, clues []Clue, used map[string]bool, yield func(Board) bool) bool {
	if ctx.Err() != nil {
		return false
	}

	clue, ok := f.nextClue(b, clues, used)
	if !ok {
		return yield(b.clone())
	}

	for _, word := range f.candidates(b, clue, used) {
		attempt := b.clone()
		attempt.writeClue(clue, word)

		// Placing a word can complete crossing clues as a side effect;
		// those must be real words we have not used yet.
		completed, ok := f.completedWords(b, attempt, clues, used)
		if !ok {
			continue
		}
		for _, w := range completed {
			used[w] = true
		}

		if f.viable(attempt, clues, used) {
			if !f.fill(ctx, attempt, clues, used, yield) {
				return false
			}
		}

		for _, w := range completed {
			delete(used, w)
		}
	}
	return true
}

// completedWords collects the words finished by the latest placement,
// including the placed clue itself: the clues that were incomplete on
// before and are complete on after. It reports false if any of them is
// not in the vocabulary or repeats a word already on the board.
func (f *Filler) completedWords(before, after Board, clues []Clue, used map[string]bool) ([]string, bool) {
	var completed []string
	seen := make(map[string]bool)

	for _, clue := range clues {
		if _, wasComplete := filledWord(before, clue); wasComplete {
			continue
		}
		word, complete := filledWord(after, clue)
		if !complete {
			continue
		}
		if used[word] || seen[word] {
			return nil, false
		}
		if _, result := f.vocab.Lookup([]rune(word)); result != vocab.Found {
			return nil, false
		}
		seen[word] = true
		completed = append(completed, word)
	}
	return completed, true
}

// filledWord reads the clue's word off the board, reporting false while
// any of its squares is still empty.
func filledWord(b Board, c Clue) (string, bool) {
	runes := make([]rune, c.Length)
	for i, sq := range b.clueSquares(c) {
		r, ok := sq.Letter()
		if !ok {
			return "", false
		}
		runes[i] = r
	}
	return string(runes), true
}
