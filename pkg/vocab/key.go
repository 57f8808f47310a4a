package vocab

import "cmp"

// keyKind orders Start < Internal < End, so a sorted sibling list keeps the
// End sentinel after every interior symbol.
type keyKind uint8

const (
	kindStart keyKind = iota
	kindInternal
	kindEnd
)

// Key is one level of a stored sequence: the Start sentinel (root only), an
// interior symbol, or the End sentinel marking that a complete sequence ends
// here. Separate sentinels let a node be a shared prefix while a sibling End
// node records the complete word; the two are never conflated.
type Key[K cmp.Ordered] struct {
	kind keyKind
	sym  K
}

func startKey[K cmp.Ordered]() Key[K] { return Key[K]{kind: kindStart} }

func endKey[K cmp.Ordered]() Key[K] { return Key[K]{kind: kindEnd} }

func internalKey[K cmp.Ordered](sym K) Key[K] {
	return Key[K]{kind: kindInternal, sym: sym}
}

// IsEnd reports whether k is the End sentinel.
func (k Key[K]) IsEnd() bool { return k.kind == kindEnd }

// Symbol returns the interior symbol, or false for either sentinel.
func (k Key[K]) Symbol() (K, bool) {
	if k.kind != kindInternal {
		var zero K
		return zero, false
	}
	return k.sym, true
}

func compareKeys[K cmp.Ordered](a, b Key[K]) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind != kindInternal {
		return 0
	}
	return cmp.Compare(a.sym, b.sym)
}
