// Package engine implements the sparse dynamic-programming core: the
// compressed threshold table, the per-row amortized/elementwise queries,
// the row update (with LCSk++ continuation), and back-pointer
// reconstruction.
package engine

// NoPrev is the Prev value of a MatchPair with no predecessor (the
// sentinel).
const NoPrev int32 = -1

// MatchPair is a single node in the optimal-alignment DAG: it records where
// a k-mer match (or LCSk++ continuation) ends, the DP value achieved there,
// and a back-reference to its predecessor.
type MatchPair struct {
	EndRow int
	EndCol int
	DP     int
	Prev   int32
}

// arena is an append-only store of MatchPairs, referenced by index rather
// than by pointer or refcount: the prev graph is a DAG where many nodes
// share a predecessor, and a flat slice plus int32 index avoids per-node
// allocation and refcounting for that sharing.
type arena struct {
	pairs []MatchPair
}

func newArena() *arena {
	return &arena{}
}

// add appends mp and returns its arena index.
func (a *arena) add(mp MatchPair) int32 {
	a.pairs = append(a.pairs, mp)
	return int32(len(a.pairs) - 1)
}

// at returns the MatchPair stored at idx. idx == NoPrev is never valid here;
// callers must check against NoPrev before calling at.
func (a *arena) at(idx int32) MatchPair {
	return a.pairs[idx]
}
