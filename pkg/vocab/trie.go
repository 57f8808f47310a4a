// Package vocab indexes weighted symbol sequences in an arena-backed trie.
//
// The trie answers four kinds of read query against a vocabulary built once
// by bulk insertion: exact lookup with a three-way result, prefix
// reachability, fixed-length wildcard pattern matching, and cost-ordered
// enumeration of pattern matches. Every node carries the smallest cost of
// any complete sequence beneath it, which lets the ordered traversal prune
// without materializing matches up front.
//
// A Trie is not safe for concurrent mutation. Once the last Insert returns
// it is effectively frozen: all queries are read-only and may run from any
// number of goroutines concurrently. Callers must not insert after
// concurrent reads begin; the trie does not arbitrate this.
package vocab

import (
	"cmp"
	"slices"
)

// QueryResult is the three-way outcome of an exact lookup. Callers must not
// conflate KnownPrefix with Unknown: a known prefix means extending the
// sequence can still reach a stored word.
type QueryResult int

const (
	// Unknown means the sequence is neither stored nor a prefix of
	// anything stored.
	Unknown QueryResult = iota
	// KnownPrefix means the sequence is not itself stored, but at least
	// one longer stored sequence begins with it.
	KnownPrefix
	// Found means the sequence is stored; the reported cost is the
	// smallest cost ever inserted for it.
	Found
)

func (r QueryResult) String() string {
	switch r {
	case Unknown:
		return "Unknown"
	case KnownPrefix:
		return "KnownPrefix"
	case Found:
		return "Found"
	}
	return "QueryResult(invalid)"
}

// node lives in the arena and refers to relatives by arena index. The
// parent index exists only for path reconstruction; the arena owns every
// node for the life of the trie and indices never move.
type node[K cmp.Ordered, C cmp.Ordered] struct {
	key Key[K]
	// agg is the smallest cost of any complete sequence in this node's
	// subtree. The root's agg is the global minimum.
	agg      C
	parent   int // -1 for the root
	children []int
}

// Trie is a weighted prefix tree over sequences of ordered symbols K with
// totally ordered costs C. The zero value is an empty trie ready for use.
type Trie[K cmp.Ordered, C cmp.Ordered] struct {
	nodes []node[K, C]
	size  int // distinct complete sequences
}

// New returns an empty trie. The root node is created lazily on the first
// insertion.
func New[K cmp.Ordered, C cmp.Ordered]() *Trie[K, C] {
	return &Trie[K, C]{}
}

// Len returns the number of distinct complete sequences stored.
func (t *Trie[K, C]) Len() int { return t.size }

// NumNodes returns the number of arena nodes, sentinels included.
func (t *Trie[K, C]) NumNodes() int { return len(t.nodes) }

// IsEmpty reports whether no sequence has been inserted.
func (t *Trie[K, C]) IsEmpty() bool { return t.size == 0 }

// MinCost returns the smallest cost of any stored sequence, or false if the
// trie is empty.
func (t *Trie[K, C]) MinCost() (C, bool) {
	if len(t.nodes) == 0 {
		var zero C
		return zero, false
	}
	return t.nodes[0].agg, true
}

// Insert stores seq with the given cost. Inserting the same sequence again
// reuses the existing nodes and keeps the smaller of the two costs.
// Sequences sharing a prefix share exactly one subtree for it. Insert never
// fails; symbol validation belongs to the caller.
func (t *Trie[K, C]) Insert(seq []K, cost C) {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[K, C]{key: startKey[K](), agg: cost, parent: -1})
	} else if cost < t.nodes[0].agg {
		t.nodes[0].agg = cost
	}

	cur := 0
	for _, sym := range seq {
		cur, _ = t.childOrCreate(cur, internalKey[K](sym), cost)
	}
	if _, created := t.childOrCreate(cur, endKey[K](), cost); created {
		t.size++
	}
}

// Lookup walks the trie consuming exactly the symbols of seq and reports
// whether the sequence is stored (Found, with its minimum cost), is a
// proper prefix of something stored (KnownPrefix), or is absent (Unknown).
func (t *Trie[K, C]) Lookup(seq []K) (C, QueryResult) {
	var zero C
	if len(t.nodes) == 0 {
		return zero, Unknown
	}

	cur := 0
	for _, sym := range seq {
		child, ok := t.child(cur, internalKey[K](sym))
		if !ok {
			return zero, Unknown
		}
		cur = child
	}

	if end, ok := t.child(cur, endKey[K]()); ok {
		return t.nodes[end].agg, Found
	}
	if len(t.nodes[cur].children) > 0 {
		return zero, KnownPrefix
	}
	return zero, Unknown
}

// child returns the arena index of cur's child with the given key, if any.
func (t *Trie[K, C]) child(cur int, key Key[K]) (int, bool) {
	kids := t.nodes[cur].children
	pos, ok := slices.BinarySearchFunc(kids, key, func(i int, k Key[K]) int {
		return compareKeys(t.nodes[i].key, k)
	})
	if !ok {
		return 0, false
	}
	return kids[pos], true
}

// childOrCreate descends into the child with the given key, creating it if
// absent, and lowers its aggregate to cost if cost is smaller. Children
// stay sorted by key so lookups can binary search.
func (t *Trie[K, C]) childOrCreate(parent int, key Key[K], cost C) (index int, created bool) {
	kids := t.nodes[parent].children
	pos, ok := slices.BinarySearchFunc(kids, key, func(i int, k Key[K]) int {
		return compareKeys(t.nodes[i].key, k)
	})
	if ok {
		child := kids[pos]
		if cost < t.nodes[child].agg {
			t.nodes[child].agg = cost
		}
		return child, false
	}

	index = len(t.nodes)
	t.nodes = append(t.nodes, node[K, C]{key: key, agg: cost, parent: parent})
	t.nodes[parent].children = slices.Insert(kids, pos, index)
	return index, true
}

// pathTo reconstructs the symbol sequence ending at the given node by
// following parent links to the root, skipping sentinels.
func (t *Trie[K, C]) pathTo(index int) []K {
	var seq []K
	for cur := index; cur >= 0; cur = t.nodes[cur].parent {
		if sym, ok := t.nodes[cur].key.Symbol(); ok {
			seq = append(seq, sym)
		}
	}
	slices.Reverse(seq)
	return seq
}
