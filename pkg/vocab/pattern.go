package vocab

import "cmp"

// constraint restricts which keys a traversal may descend into at one depth.
type constraint[K cmp.Ordered] struct {
	any bool
	key Key[K]
}

// Pattern is a compiled fixed-length wildcard query. Its constraints align
// with trie depth: index 0 matches the Start sentinel, the last index
// matches End, and the interior entries each fix a symbol or allow any. A
// pattern compiled from n positions matches sequences of exactly n symbols,
// never shorter or longer ones.
type Pattern[K cmp.Ordered] struct {
	constraints []constraint[K]
}

// CompilePattern builds a pattern from one entry per symbol position; a nil
// entry is a wildcard.
func CompilePattern[K cmp.Ordered](positions []*K) Pattern[K] {
	cs := make([]constraint[K], 0, len(positions)+2)
	cs = append(cs, constraint[K]{key: startKey[K]()})
	for _, p := range positions {
		if p == nil {
			cs = append(cs, constraint[K]{any: true})
		} else {
			cs = append(cs, constraint[K]{key: internalKey[K](*p)})
		}
	}
	cs = append(cs, constraint[K]{key: endKey[K]()})
	return Pattern[K]{constraints: cs}
}

// CompileStringPattern compiles a rune pattern from s, treating wildcard as
// an unconstrained position. For example ("h.llo", '.') matches any stored
// five-letter word with 'h', 'l', 'l', 'o' fixed.
func CompileStringPattern(s string, wildcard rune) Pattern[rune] {
	runes := []rune(s)
	positions := make([]*rune, len(runes))
	for i := range runes {
		if runes[i] != wildcard {
			positions[i] = &runes[i]
		}
	}
	return CompilePattern(positions)
}

// Length returns the number of symbol positions the pattern constrains.
func (p Pattern[K]) Length() int {
	if len(p.constraints) < 2 {
		return 0
	}
	return len(p.constraints) - 2
}
