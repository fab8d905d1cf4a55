// Package rollhash provides a stateful rolling-hash producer over sliding
// k-windows of a string, used to find exact k-mer matches in perfect-hash
// time. The hash is an arbitrary-k base-|Sigma| polynomial hash, chosen so
// that it is a perfect injection over the k-mer universe (the alphabet
// size raised to the k-th power must fit in 64 bits).
package rollhash

import (
	"github.com/fpavetic/lcskpp/alphabet"
	"github.com/fpavetic/lcskpp/encode"
)

// Hasher produces the lazy, finite, non-restartable sequence of hashes of
// windows s[0..k), s[1..k+1), ..., s[len(s)-k..len(s)).
type Hasher struct {
	ids     []byte
	k       int
	base    uint64
	hashMod uint64

	hash uint64
	col  int
	done bool
}

// New configures a Hasher over s with window size k using tbl to map bytes
// to dense ids. The string is translated into ids once, up front, via
// encode.Translate, rather than looking each byte up through tbl on every
// step of the rolling window — the one-time bulk pass is cheaper than
// len(s)-k+1 repeated per-byte lookups in the hot loop. The caller must
// have already validated that tbl.Size^k fits in 64 bits
// (alphabet.Validate); New does not re-check it.
func New(s string, k int, tbl *alphabet.Table) *Hasher {
	base := uint64(tbl.Size)
	if base == 0 {
		base = 1
	}
	hashMod, _ := alphabet.PowCheckedUint64(base, k)

	ids := make([]byte, len(s))
	encode.Translate(ids, []byte(s), tbl.ByteTable())

	return &Hasher{
		ids:     ids,
		k:       k,
		base:    base,
		hashMod: hashMod,
	}
}

// Next returns the hash of the next window, or hasMore=false once the
// sequence is exhausted. No further calls are defined to succeed after
// hasMore is false.
func (h *Hasher) Next() (hash uint64, hasMore bool) {
	if h.done || h.col+h.k > len(h.ids) {
		h.done = true
		return 0, false
	}

	if h.col == 0 {
		h.hash = 0
		for i := 0; i < h.k-1; i++ {
			h.hash = h.hash*h.base + uint64(h.ids[i])
		}
	}

	h.hash = h.hash*h.base + uint64(h.ids[h.col+h.k-1])
	if h.hashMod != 0 {
		h.hash %= h.hashMod
	}
	h.col++
	return h.hash, true
}
