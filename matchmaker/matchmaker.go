// Package matchmaker produces, row by row, the columns of B that share a
// k-mer with the current row of A. A hash-bucket lookup returns *all*
// matches for an exact k-mer, not just one, since LCSk(++) reconstruction
// needs every witness.
package matchmaker

import (
	"github.com/fpavetic/lcskpp/alphabet"
	"github.com/fpavetic/lcskpp/rollhash"
)

// MatchMaker returns, on its i-th call, the ascending list of columns j in B
// such that A[i..i+k) == B[j..j+k).
type MatchMaker interface {
	// GetNextMatches returns the matches for the next row and whether more
	// rows remain to be produced.
	GetNextMatches() (matches []int, hasMore bool)
}

// PerfectHash is the MatchMaker used by the fast sparse DP engine: it
// builds a hash map from k-mer hash to sorted B-positions once, then rolls
// a single hasher over A, looking up a bucket per row in O(1) amortized.
type PerfectHash struct {
	k      int
	a      string
	hasher *rollhash.Hasher
	bmap   map[uint64][]int
	row    int
	lenA   int
}

// New builds a PerfectHash match maker for a, b and window size k. The
// caller is responsible for having validated alphabet.Validate(tbl.Size, k)
// beforehand; New does not reject oversized alphabets itself.
func New(a, b string, k int, tbl *alphabet.Table) *PerfectHash {
	bmap := make(map[uint64][]int)
	bh := rollhash.New(b, k, tbl)
	for col := 0; ; col++ {
		h, ok := bh.Next()
		if !ok {
			break
		}
		bmap[h] = append(bmap[h], col)
	}

	return &PerfectHash{
		k:      k,
		a:      a,
		hasher: rollhash.New(a, k, tbl),
		bmap:   bmap,
		lenA:   len(a),
	}
}

// GetNextMatches implements MatchMaker.
func (m *PerfectHash) GetNextMatches() ([]int, bool) {
	if m.row+m.k > m.lenA {
		return nil, false
	}
	h, ok := m.hasher.Next()
	if !ok {
		// Precondition row+k<=lenA guarantees this path is unreachable;
		// guarded defensively rather than panicking on an internal slip.
		return nil, false
	}
	m.row++
	// Aliases the bucket's backing slice; callers must treat it as
	// read-only and not append to it.
	return m.bmap[h], true
}
