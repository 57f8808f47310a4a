package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alipatti/nyt-games-bots/pkg/vocab"
)

const sampleList = `# most common english words
the 1
of 2
cat 31
DOG 47

carp 112
`

func TestParseReader(t *testing.T) {
	entries, err := ParseReader(strings.NewReader(sampleList), Options{})
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Word: "the", Cost: 1},
		{Word: "of", Cost: 2},
		{Word: "cat", Cost: 31},
		{Word: "dog", Cost: 47},
		{Word: "carp", Cost: 112},
	}, entries)
}

func TestParseReaderFilters(t *testing.T) {
	entries, err := ParseReader(strings.NewReader(sampleList), Options{
		MinLength:  3,
		MaxLength:  3,
		MaxEntries: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Word: "the", Cost: 1},
		{Word: "cat", Cost: 31},
	}, entries)
}

func TestParseReaderUnannotatedList(t *testing.T) {
	entries, err := ParseReader(strings.NewReader("apple\nbanana\ncherry\n"), Options{})
	require.NoError(t, err)

	// Position in the list stands in for popularity.
	assert.Equal(t, []Entry{
		{Word: "apple", Cost: 1},
		{Word: "banana", Cost: 2},
		{Word: "cherry", Cost: 3},
	}, entries)
}

func TestParseReaderRejectsBadInput(t *testing.T) {
	_, err := ParseReader(strings.NewReader("ca't 3\n"), Options{})
	assert.Error(t, err)

	_, err = ParseReader(strings.NewReader("cat notanumber\n"), Options{})
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	entries, err := ParseReader(strings.NewReader(sampleList), Options{MinLength: 3})
	require.NoError(t, err)

	trie := Build(entries)
	assert.Equal(t, 4, trie.Len())

	cost, result := trie.Lookup([]rune("dog"))
	assert.Equal(t, vocab.Found, result)
	assert.Equal(t, 47, cost)

	_, result = trie.Lookup([]rune("car"))
	assert.Equal(t, vocab.KnownPrefix, result)

	_, result = trie.Lookup([]rune("of"))
	assert.Equal(t, vocab.Unknown, result)
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "vocab.json")

	trie := Build([]Entry{{Word: "hello", Cost: 1}, {Word: "world", Cost: 3}})
	require.NoError(t, Save(cachePath, trie))

	loaded, err := Load(cachePath)
	require.NoError(t, err)

	assert.Equal(t, trie.Len(), loaded.Len())
	cost, result := loaded.Lookup([]rune("world"))
	assert.Equal(t, vocab.Found, result)
	assert.Equal(t, 3, cost)
}

func TestLoadOrBuildPrefersCache(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "vocab.json")
	listPath := filepath.Join(dir, "words.txt")

	// Cache holds a different word set than the list; the cache wins.
	require.NoError(t, Save(cachePath, Build([]Entry{{Word: "cached", Cost: 1}})))
	writeFile(t, listPath, "fresh 1\n")

	trie, err := LoadOrBuild(cachePath, listPath, Options{})
	require.NoError(t, err)

	_, result := trie.Lookup([]rune("cached"))
	assert.Equal(t, vocab.Found, result)
	_, result = trie.Lookup([]rune("fresh"))
	assert.Equal(t, vocab.Unknown, result)
}

func TestLoadOrBuildRebuildsAndCaches(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "vocab.json")
	listPath := filepath.Join(dir, "words.txt")
	writeFile(t, listPath, "fresh 1\nwords 2\n")

	trie, err := LoadOrBuild(cachePath, listPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, trie.Len())

	// The rebuilt vocabulary must now be cached.
	cached, err := Load(cachePath)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
