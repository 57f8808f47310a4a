package letterboxed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
)

// testBoard has sides abc / def / ghi / jkl.
func testBoard(t *testing.T) Board {
	t.Helper()
	b, err := NewBoard([]string{"abc", "def", "ghi", "jkl"})
	require.NoError(t, err)
	return b
}

func buildVocab(words ...string) *vocab.Trie[rune, int] {
	trie := vocab.New[rune, int]()
	for i, w := range words {
		trie.Insert([]rune(w), i+1)
	}
	return trie
}

func TestNewBoardValidation(t *testing.T) {
	_, err := NewBoard([]string{"abc", "def", "ghi"})
	assert.Error(t, err, "too few sides")

	_, err = NewBoard([]string{"abcd", "def", "ghi", "jkl"})
	assert.Error(t, err, "side too long")

	_, err = NewBoard([]string{"ab1", "def", "ghi", "jkl"})
	assert.Error(t, err, "non-letter")

	b, err := NewBoard([]string{"ABC", "def", "GHI", "jkl"})
	require.NoError(t, err)
	assert.Equal(t, 'a', b.Letter(Position{Side: 0, Index: 0}), "letters are lowercased")
}

func TestLetterSet(t *testing.T) {
	var s letterSet
	assert.False(t, s.full())

	for _, p := range testBoard(t).Positions() {
		s = s.with(p)
	}
	assert.True(t, s.full())
}

func TestMovesFromExcludeOwnSide(t *testing.T) {
	b := testBoard(t)
	moves := b.movesFrom(Position{Side: 1, Index: 2})

	assert.Len(t, moves, 9)
	for _, m := range moves {
		assert.NotEqual(t, 1, m.Side)
	}
}

func TestLegalWordsRespectSides(t *testing.T) {
	b := testBoard(t)
	// "ab" stays on side 0 and can never be traced; "ad" alternates sides.
	g := NewGame(b, buildVocab("ab", "ad"))

	var found []string
	for _, ws := range g.legalWords() {
		for _, w := range ws {
			found = append(found, w.word)
		}
	}
	assert.Equal(t, []string{"ad"}, found)
}

func TestLegalWordsPrunedByPrefix(t *testing.T) {
	b := testBoard(t)
	// "adg" is reachable through prefix "ad", which is not itself a word:
	// KnownPrefix must keep the branch alive.
	g := NewGame(b, buildVocab("adg"))

	words := g.legalWords()
	require.Len(t, words[Position{Side: 0, Index: 0}], 1)
	w := words[Position{Side: 0, Index: 0}][0]
	assert.Equal(t, "adg", w.word)
	assert.Equal(t, Position{Side: 2, Index: 0}, w.end)
}

func TestSolutionsSingleWord(t *testing.T) {
	b := testBoard(t)
	// One word tracing every letter, always changing sides.
	g := NewGame(b, buildVocab("adgjbehkcfil"))

	var solutions [][]string
	for moves := range g.Solutions(context.Background()) {
		solutions = append(solutions, moves)
	}

	require.Len(t, solutions, 1)
	assert.Equal(t, []string{"adgjbehkcfil"}, solutions[0])
}

func TestSolutionsChainWords(t *testing.T) {
	b := testBoard(t)
	// Neither word covers the board alone; chained at 'k' they do.
	g := NewGame(b, buildVocab("adgjbehk", "kcfil"))

	var solutions [][]string
	for moves := range g.Solutions(context.Background()) {
		solutions = append(solutions, moves)
	}

	require.NotEmpty(t, solutions)
	assert.Equal(t, []string{"adgjbehk", "kcfil"}, solutions[0])
}

func TestSolutionsNoneWithoutCoverage(t *testing.T) {
	b := testBoard(t)
	g := NewGame(b, buildVocab("ad", "da"))

	for range g.Solutions(context.Background()) {
		t.Fatal("no solution should exist")
	}
}

func TestSolutionsHonorCancellation(t *testing.T) {
	b := testBoard(t)
	g := NewGame(b, buildVocab("adgjbehkcfil"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range g.Solutions(ctx) {
		t.Fatal("cancelled search should not yield")
	}
}

const samplePage = `<html><script>window.gameData = {"id":42,` +
	`"sides":["LCV","RWA","ENG","TIO"],"date":"2024-01-23"}</script></html>`

func TestParseGamePage(t *testing.T) {
	board, err := ParseGamePage(samplePage)
	require.NoError(t, err)
	assert.Equal(t, "lcv / rwa / eng / tio", board.String())
}

func TestParseGamePageMissingSides(t *testing.T) {
	_, err := ParseGamePage("<html>nothing here</html>")
	assert.Error(t, err)
}
