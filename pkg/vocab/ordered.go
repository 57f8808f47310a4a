package vocab

import (
	"cmp"
	"container/heap"
	"iter"
)

// heapItem carries a frontier node's aggregate cost alongside its frame so
// the frontier can order itself without touching the arena.
type heapItem[C cmp.Ordered] struct {
	agg C
	frame
}

// frontier is a min-heap of frontier nodes keyed on aggregate cost.
type frontier[C cmp.Ordered] []heapItem[C]

func (f frontier[C]) Len() int           { return len(f) }
func (f frontier[C]) Less(i, j int) bool { return f[i].agg < f[j].agg }
func (f frontier[C]) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier[C]) Push(x any)        { *f = append(*f, x.(heapItem[C])) }
func (f *frontier[C]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// AllOrdered lazily enumerates stored sequences matching the pattern in
// non-decreasing cost order, with ties broken arbitrarily. A nil pattern
// enumerates everything.
//
// Because a node's aggregate is a lower bound on every cost beneath it,
// popping frontier nodes by ascending aggregate and re-inserting their
// children yields terminals in globally sorted order without ever
// materializing the full match set: a lazy k-way merge over cost-sorted
// subtrees. Consumers that want the cheapest candidate first can stop
// pulling as soon as they have enough.
func (t *Trie[K, C]) AllOrdered(pattern *Pattern[K]) iter.Seq2[[]K, C] {
	return func(yield func([]K, C) bool) {
		if len(t.nodes) == 0 {
			return
		}

		pq := frontier[C]{{agg: t.nodes[0].agg, frame: frame{index: 0, depth: 0}}}
		heap.Init(&pq)

		for pq.Len() > 0 {
			f := heap.Pop(&pq).(heapItem[C]).frame

			if t.nodes[f.index].key.IsEnd() {
				if t.terminalMatches(f, pattern) {
					if !yield(t.pathTo(f.index), t.nodes[f.index].agg) {
						return
					}
				}
				continue
			}

			for _, c := range t.permittedChildren(f, pattern) {
				heap.Push(&pq, heapItem[C]{
					agg:   t.nodes[c].agg,
					frame: frame{index: c, depth: f.depth + 1},
				})
			}
		}
	}
}
