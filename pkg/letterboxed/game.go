package letterboxed

import (
	"container/heap"
	"context"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
)

var log = logrus.WithField("component", "letterboxed")

// playedWord is a legal word annotated with where it ends on the board and
// which positions it covers.
type playedWord struct {
	word   string
	end    Position
	covers letterSet
}

// Game pairs a board with the vocabulary it is played against.
type Game struct {
	board Board
	vocab *vocab.Trie[rune, int]
}

func NewGame(board Board, v *vocab.Trie[rune, int]) *Game {
	return &Game{board: board, vocab: v}
}

func (g *Game) Board() Board { return g.board }

// legalWords enumerates every vocabulary word traceable on the board,
// grouped by starting position. The walk extends a candidate one letter at
// a time and abandons any branch the trie reports as Unknown; KnownPrefix
// keeps a branch alive even when the current letters are not yet a word.
// This is where the three-way lookup earns its keep: conflating the two
// would either cut off real words or walk the board forever.
func (g *Game) legalWords() map[Position][]playedWord {
	words := make(map[Position][]playedWord)
	for _, start := range g.board.Positions() {
		prefix := []rune{g.board.Letter(start)}
		covers := letterSet(0).with(start)
		g.extendWord(start, start, prefix, covers, words)
	}

	total := 0
	for _, ws := range words {
		total += len(ws)
	}
	log.WithField("words", total).Debug("enumerated legal words")
	return words
}

func (g *Game) extendWord(start, current Position, prefix []rune, covers letterSet, words map[Position][]playedWord) {
	if _, result := g.vocab.Lookup(prefix); result == vocab.Found {
		words[start] = append(words[start], playedWord{
			word:   string(prefix),
			end:    current,
			covers: covers,
		})
	}

	for _, next := range g.board.movesFrom(current) {
		extended := append(prefix, g.board.Letter(next))
		if _, result := g.vocab.Lookup(extended); result == vocab.Unknown {
			continue
		}
		g.extendWord(start, next, append([]rune(nil), extended...), covers.with(next), words)
	}
}

// gameState identifies a point in the solution search. The words played to
// reach it are carried separately; two states with the same position and
// coverage are interchangeable for search purposes.
type gameState struct {
	pos  Position
	used letterSet
}

// searchItem is a frontier entry of the Dijkstra search.
type searchItem struct {
	cost  int
	state gameState
	moves []string
}

type searchQueue []searchItem

func (q searchQueue) Len() int           { return len(q) }
func (q searchQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q searchQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *searchQueue) Push(x any)        { *q = append(*q, x.(searchItem)) }
func (q *searchQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// wordCost makes longer words cheaper so solutions that cover the board in
// few, long words surface first.
func wordCost(word string) int { return 1000 - len(word) }

// Solutions lazily streams word chains that use every letter on the board,
// cheapest chains first: Dijkstra over (position, letters-used) states
// where each move plays a word starting at the end of the previous one.
// The caller stops pulling when it has seen enough.
func (g *Game) Solutions(ctx context.Context) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		legal := g.legalWords()

		// First move: any word, from anywhere.
		var pq searchQueue
		for _, ws := range legal {
			for _, w := range ws {
				pq = append(pq, searchItem{
					cost:  wordCost(w.word),
					state: gameState{pos: w.end, used: w.covers},
					moves: []string{w.word},
				})
			}
		}
		heap.Init(&pq)

		visited := make(map[gameState]bool)
		for pq.Len() > 0 {
			if ctx.Err() != nil {
				return
			}

			item := heap.Pop(&pq).(searchItem)
			if visited[item.state] {
				continue
			}
			visited[item.state] = true

			if item.state.used.full() {
				if !yield(item.moves) {
					return
				}
				continue
			}

			// The next word must start where the last one ended.
			for _, w := range legal[item.state.pos] {
				next := gameState{pos: w.end, used: item.state.used.union(w.covers)}
				if visited[next] {
					continue
				}
				moves := make([]string, 0, len(item.moves)+1)
				moves = append(moves, item.moves...)
				moves = append(moves, w.word)
				heap.Push(&pq, searchItem{
					cost:  item.cost + wordCost(w.word),
					state: next,
					moves: moves,
				})
			}
		}
	}
}
