// Package randdna generates random DNA sequences and point-mutated copies
// of them, for use as engine/oracle test fixtures and the cmd/lcskpp-stats
// workload. It is a port of util/random_strings.h from the original
// fast-simple-lcsk source, rebuilt on top of a caller-supplied *rand.Rand
// instead of the source's global rand()/srand() so callers can run
// reproducible, non-interfering simulations concurrently (see batch.Run).
package randdna

import "math/rand"

const bases = "ACGT"

// Random returns a uniformly random DNA sequence of length n over {A,C,G,T}.
func Random(n int, rng *rand.Rand) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = bases[rng.Intn(len(bases))]
	}
	return string(buf)
}

// Mutate returns a copy of s in which every position is independently
// replaced by a uniformly random base with probability pErr. The
// replacement base may coincide with the original; this matches
// generate_similar in the source, which does not exclude the original
// base when resampling.
func Mutate(s string, pErr float64, rng *rand.Rand) string {
	buf := []byte(s)
	for i := range buf {
		if rng.Float64() < pErr {
			buf[i] = bases[rng.Intn(len(bases))]
		}
	}
	return string(buf)
}
