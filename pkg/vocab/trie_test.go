package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertAll(t *Trie[rune, int], words map[string]int) {
	for w, cost := range words {
		t.Insert([]rune(w), cost)
	}
}

// collect drains a traversal into word -> cost form.
func collect(t *testing.T, trie *Trie[rune, int], pattern *Pattern[rune]) map[string]int {
	t.Helper()
	got := make(map[string]int)
	for seq, cost := range trie.All(pattern) {
		word := string(seq)
		_, dup := got[word]
		require.False(t, dup, "traversal yielded %q twice", word)
		got[word] = cost
	}
	return got
}

func TestEmptyTrie(t *testing.T) {
	trie := New[rune, int]()

	assert.True(t, trie.IsEmpty())
	assert.Equal(t, 0, trie.NumNodes())

	_, result := trie.Lookup([]rune("a"))
	assert.Equal(t, Unknown, result)

	_, ok := trie.MinCost()
	assert.False(t, ok)

	assert.Empty(t, collect(t, trie, nil))
	for range trie.AllOrdered(nil) {
		t.Fatal("ordered traversal of empty trie yielded a value")
	}
}

func TestLookupRoundTrip(t *testing.T) {
	trie := New[rune, int]()
	trie.Insert([]rune("hello"), 7)

	cost, result := trie.Lookup([]rune("hello"))
	assert.Equal(t, Found, result)
	assert.Equal(t, 7, cost)

	_, result = trie.Lookup([]rune("hell"))
	assert.Equal(t, KnownPrefix, result)

	_, result = trie.Lookup([]rune("helloo"))
	assert.Equal(t, Unknown, result)
}

func TestPrefixDistinction(t *testing.T) {
	trie := New[rune, int]()
	trie.Insert([]rune("car"), 1)

	_, result := trie.Lookup([]rune("ca"))
	assert.Equal(t, KnownPrefix, result)

	_, result = trie.Lookup([]rune("care"))
	assert.Equal(t, Unknown, result)

	_, result = trie.Lookup([]rune("car"))
	assert.Equal(t, Found, result)
}

func TestRepeatedInsertKeepsMinimumCost(t *testing.T) {
	trie := New[rune, int]()
	trie.Insert([]rune("cat"), 5)

	nodesAfterFirst := trie.NumNodes()

	trie.Insert([]rune("cat"), 2)
	trie.Insert([]rune("cat"), 7)

	cost, result := trie.Lookup([]rune("cat"))
	assert.Equal(t, Found, result)
	assert.Equal(t, 2, cost)

	// Idempotence: re-inserting reuses the existing path.
	assert.Equal(t, nodesAfterFirst, trie.NumNodes())
	assert.Equal(t, 1, trie.Len())
}

func TestSharedPrefixSharesNodes(t *testing.T) {
	trie := New[rune, int]()
	trie.Insert([]rune("cat"), 5)
	trie.Insert([]rune("cap"), 6)

	// root, c, a, t, p, and two end sentinels.
	assert.Equal(t, 7, trie.NumNodes())
	assert.Equal(t, 2, trie.Len())

	_, result := trie.Lookup([]rune("ca"))
	assert.Equal(t, KnownPrefix, result)

	got := collect(t, trie, nil)
	assert.Equal(t, map[string]int{"cat": 5, "cap": 6}, got)
}

func TestMinCostIsGlobalMinimum(t *testing.T) {
	trie := New[rune, int]()
	insertAll(trie, map[string]int{"alpha": 9, "beta": 3, "gamma": 12})

	min, ok := trie.MinCost()
	require.True(t, ok)
	assert.Equal(t, 3, min)
}

func TestEmptySequence(t *testing.T) {
	trie := New[rune, int]()
	trie.Insert(nil, 4)

	cost, result := trie.Lookup(nil)
	assert.Equal(t, Found, result)
	assert.Equal(t, 4, cost)

	// The empty sequence matches only the zero-length pattern.
	empty := CompilePattern[rune](nil)
	assert.Equal(t, map[string]int{"": 4}, collect(t, trie, &empty))
}

func TestSnapshotRoundTrip(t *testing.T) {
	trie := New[rune, int]()
	insertAll(trie, map[string]int{"hello": 1, "hells": 2, "world": 3, "hillo": 4})

	rebuilt, err := FromSnapshot(trie.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, trie.Len(), rebuilt.Len())
	assert.Equal(t, trie.NumNodes(), rebuilt.NumNodes())
	assert.Equal(t, collect(t, trie, nil), collect(t, rebuilt, nil))

	cost, result := rebuilt.Lookup([]rune("hells"))
	assert.Equal(t, Found, result)
	assert.Equal(t, 2, cost)

	_, result = rebuilt.Lookup([]rune("hel"))
	assert.Equal(t, KnownPrefix, result)
}

func TestFromSnapshotEmpty(t *testing.T) {
	rebuilt, err := FromSnapshot(Snapshot[rune, int]{})
	require.NoError(t, err)
	assert.True(t, rebuilt.IsEmpty())
}

func TestFromSnapshotRejectsMalformed(t *testing.T) {
	base := func() Snapshot[rune, int] {
		trie := New[rune, int]()
		trie.Insert([]rune("ab"), 1)
		return trie.Snapshot()
	}

	for _, tc := range []struct {
		name   string
		mutate func(*Snapshot[rune, int])
	}{
		{
			name:   "root not start sentinel",
			mutate: func(s *Snapshot[rune, int]) { s.Nodes[0].Kind = KindInternal },
		},
		{
			name:   "root has a parent",
			mutate: func(s *Snapshot[rune, int]) { s.Nodes[0].Parent = 2 },
		},
		{
			name:   "child index out of range",
			mutate: func(s *Snapshot[rune, int]) { s.Nodes[0].Children = []int{99} },
		},
		{
			name:   "parent disagrees with child list",
			mutate: func(s *Snapshot[rune, int]) { s.Nodes[1].Parent = 2 },
		},
		{
			name:   "invalid kind",
			mutate: func(s *Snapshot[rune, int]) { s.Nodes[1].Kind = 42 },
		},
		{
			name: "end sentinel with children",
			mutate: func(s *Snapshot[rune, int]) {
				for i := range s.Nodes {
					if s.Nodes[i].Kind == KindEnd {
						s.Nodes[i].Children = []int{1}
						return
					}
				}
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := base()
			tc.mutate(&s)
			_, err := FromSnapshot(s)
			assert.Error(t, err)
		})
	}
}
