package vocab

import (
	"cmp"
	"fmt"
)

// Node kinds as they appear in a Snapshot.
const (
	KindStart uint8 = iota
	KindInternal
	KindEnd
)

// SnapshotNode is the plain-data form of one arena node. Symbol is
// meaningful only when Kind is KindInternal.
type SnapshotNode[K cmp.Ordered, C cmp.Ordered] struct {
	Kind     uint8 `json:"kind"`
	Symbol   K     `json:"symbol,omitempty"`
	Cost     C     `json:"cost"`
	Parent   int   `json:"parent"`
	Children []int `json:"children,omitempty"`
}

// Snapshot is the trie's arena as plain data: Nodes[i] is arena index i and
// the root, if any, is index 0. It exists so a consumer can persist a built
// vocabulary in whatever wire format it likes and reload it without
// re-inserting the raw word list; the trie itself owns no format.
type Snapshot[K cmp.Ordered, C cmp.Ordered] struct {
	Nodes []SnapshotNode[K, C] `json:"nodes"`
}

// Snapshot copies the arena into its plain-data form.
func (t *Trie[K, C]) Snapshot() Snapshot[K, C] {
	nodes := make([]SnapshotNode[K, C], len(t.nodes))
	for i, n := range t.nodes {
		sn := SnapshotNode[K, C]{
			Kind:   uint8(n.key.kind),
			Cost:   n.agg,
			Parent: n.parent,
		}
		if sym, ok := n.key.Symbol(); ok {
			sn.Symbol = sym
		}
		if len(n.children) > 0 {
			sn.Children = append([]int(nil), n.children...)
		}
		nodes[i] = sn
	}
	return Snapshot[K, C]{Nodes: nodes}
}

// FromSnapshot rebuilds a trie from its plain-data form, validating the
// structural invariants a well-formed arena must hold. Snapshots produced
// by Snapshot always round-trip; hand-built or corrupted data is rejected
// with an error rather than admitted as a trie that would panic later.
func FromSnapshot[K cmp.Ordered, C cmp.Ordered](s Snapshot[K, C]) (*Trie[K, C], error) {
	t := &Trie[K, C]{}
	if len(s.Nodes) == 0 {
		return t, nil
	}

	if s.Nodes[0].Kind != KindStart {
		return nil, fmt.Errorf("snapshot root has kind %d, want start sentinel", s.Nodes[0].Kind)
	}
	if s.Nodes[0].Parent != -1 {
		return nil, fmt.Errorf("snapshot root has parent %d, want -1", s.Nodes[0].Parent)
	}

	t.nodes = make([]node[K, C], len(s.Nodes))
	for i, sn := range s.Nodes {
		var key Key[K]
		switch sn.Kind {
		case KindStart:
			if i != 0 {
				return nil, fmt.Errorf("start sentinel at index %d, only the root may carry it", i)
			}
			key = startKey[K]()
		case KindInternal:
			key = internalKey[K](sn.Symbol)
		case KindEnd:
			if len(sn.Children) > 0 {
				return nil, fmt.Errorf("end sentinel at index %d has children", i)
			}
			key = endKey[K]()
			t.size++
		default:
			return nil, fmt.Errorf("node %d has invalid kind %d", i, sn.Kind)
		}

		if i > 0 && (sn.Parent < 0 || sn.Parent >= len(s.Nodes)) {
			return nil, fmt.Errorf("node %d has parent %d out of range", i, sn.Parent)
		}

		t.nodes[i] = node[K, C]{
			key:      key,
			agg:      sn.Cost,
			parent:   sn.Parent,
			children: append([]int(nil), sn.Children...),
		}
	}

	// Child lists must refer back to their parent and stay sorted so
	// binary-searched lookups keep working on the rebuilt arena.
	for i, n := range t.nodes {
		for j, c := range n.children {
			if c <= 0 || c >= len(t.nodes) {
				return nil, fmt.Errorf("node %d child %d out of range", i, c)
			}
			if t.nodes[c].parent != i {
				return nil, fmt.Errorf("node %d lists child %d whose parent is %d", i, c, t.nodes[c].parent)
			}
			if j > 0 && compareKeys(t.nodes[n.children[j-1]].key, t.nodes[c].key) >= 0 {
				return nil, fmt.Errorf("node %d has children out of key order", i)
			}
		}
	}

	return t, nil
}
