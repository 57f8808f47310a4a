package vocab

import "iter"

// frame is one frontier entry of a traversal: an arena index and the depth
// it sits at, which selects the pattern constraint for its children.
type frame struct {
	index int
	depth int
}

// All lazily enumerates stored sequences and their costs, depth-first with
// children in storage order. A nil pattern enumerates everything; otherwise
// only sequences matching the fixed-length pattern are yielded. Each call
// starts a fresh traversal over the same frozen structure, and abandoning
// the loop early leaves no residual state.
func (t *Trie[K, C]) All(pattern *Pattern[K]) iter.Seq2[[]K, C] {
	return func(yield func([]K, C) bool) {
		if len(t.nodes) == 0 {
			return
		}

		stack := []frame{{index: 0, depth: 0}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if t.nodes[f.index].key.IsEnd() {
				if t.terminalMatches(f, pattern) {
					if !yield(t.pathTo(f.index), t.nodes[f.index].agg) {
						return
					}
				}
				continue
			}

			for _, c := range t.permittedChildren(f, pattern) {
				stack = append(stack, frame{index: c, depth: f.depth + 1})
			}
		}
	}
}

// terminalMatches reports whether an End node popped at f's depth completes
// the pattern. A terminal reached through an Any constraint can sit above
// the pattern's full depth; that is a shorter sequence, not a match.
func (t *Trie[K, C]) terminalMatches(f frame, pattern *Pattern[K]) bool {
	return pattern == nil || f.depth == len(pattern.constraints)-1
}

// permittedChildren returns the children of f admitted by the pattern
// constraint at the next depth. An exhausted pattern stops the branch; an
// Any constraint admits every child; a Matches constraint admits at most
// one.
func (t *Trie[K, C]) permittedChildren(f frame, pattern *Pattern[K]) []int {
	next := f.depth + 1

	switch {
	case pattern == nil:
		return t.nodes[f.index].children
	case next >= len(pattern.constraints):
		return nil
	case pattern.constraints[next].any:
		return t.nodes[f.index].children
	default:
		if c, ok := t.child(f.index, pattern.constraints[next].key); ok {
			return []int{c}
		}
		return nil
	}
}
