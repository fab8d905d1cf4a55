// Package lcskpp computes the Longest Common Subsequence in k-length
// blocks (LCSk) and its continuation-extended variant (LCSk++) between two
// strings over a small alphabet, via a sparse dynamic program running in
// O((|A|+|B|+r) log r) time, r being the number of matching k-mer pairs.
// Both functions return a full reconstruction: an ordered, strictly
// increasing list of (row, col) index pairs witnessing an optimal
// alignment, not merely its length.
package lcskpp

import (
	"github.com/fpavetic/lcskpp/alphabet"
	"github.com/fpavetic/lcskpp/engine"
)

// ErrAlphabetTooLarge is returned when the combined alphabet of a and b,
// raised to the k-th power, would not fit in a uint64 — the rolling hash
// would no longer be a perfect injection over k-mers.
var ErrAlphabetTooLarge = alphabet.ErrAlphabetTooLarge

// ErrInvalidK is returned when k is not a positive integer.
var ErrInvalidK = engine.ErrInvalidK

// LcsKSparseFast computes the LCSk reconstruction between a and b with
// block size k: matched regions must be non-overlapping runs of exactly
// k characters. Empty a or b yields a nil reconstruction and no error; so
// does |a| or |b| shorter than k, once the alphabet-size check has passed.
func LcsKSparseFast(a, b string, k int) ([][2]int, error) {
	return engine.Run(a, b, k, false)
}

// LcsKppSparseFast computes the LCSk++ reconstruction between a and b with
// block size k: like LcsKSparseFast, but two k-runs offset by exactly
// (1,1) may be joined by a character-at-a-time continuation, so the
// result is never shorter than LcsKSparseFast's.
func LcsKppSparseFast(a, b string, k int) ([][2]int, error) {
	return engine.Run(a, b, k, true)
}
