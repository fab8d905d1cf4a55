// Package alphabet builds the unified character code table shared by the
// rolling hasher and the match maker.
package alphabet

import "errors"

// ErrAlphabetTooLarge is returned when Size^k would not fit in a uint64,
// meaning the rolling hash could not be a perfect injection over k-mers.
var ErrAlphabetTooLarge = errors.New("lcskpp: alphabet size ^ k does not fit in 64 bits")

// Table maps every byte observed in the input strings to a dense id in
// [0, Size). Bytes never seen by Build map to -1.
type Table struct {
	codes [256]int16
	Size  int
}

// Build scans a and b and assigns each distinct byte a unique id in
// first-seen order, a first then b.
func Build(a, b string) *Table {
	t := &Table{}
	for i := range t.codes {
		t.codes[i] = -1
	}
	assign := func(s string) {
		for i := 0; i < len(s); i++ {
			c := s[i]
			if t.codes[c] == -1 {
				t.codes[c] = int16(t.Size)
				t.Size++
			}
		}
	}
	assign(a)
	assign(b)
	return t
}

// ID returns the dense code for c, or -1 if c was never observed.
func (t *Table) ID(c byte) int {
	return int(t.codes[c])
}

// ByteTable returns a 256-entry lookup table mapping each byte to its dense
// code, suitable for bulk translation (see encode.Translate). Bytes Build
// never observed map to 0xFF; callers must only translate bytes drawn from
// the a/b strings Build scanned, which are always assigned a real code.
func (t *Table) ByteTable() [256]byte {
	var bt [256]byte
	for i, c := range t.codes {
		if c < 0 {
			bt[i] = 0xFF
			continue
		}
		bt[i] = byte(c)
	}
	return bt
}

// PowCheckedUint64 returns base^exp and reports whether it overflows a
// uint64. exp is expected to be the k-mer length and base the alphabet size.
func PowCheckedUint64(base uint64, exp int) (value uint64, overflow bool) {
	value = 1
	for i := 0; i < exp; i++ {
		next := value * base
		if base != 0 && next/base != value {
			return 0, true
		}
		value = next
	}
	return value, false
}

// Validate checks that size^k fits in 64 bits, returning ErrAlphabetTooLarge
// otherwise. size 0 always passes; k is checked by the caller.
func Validate(size, k int) error {
	if size == 0 {
		// Empty alphabet (both inputs empty) trivially fits.
		return nil
	}
	if _, overflow := PowCheckedUint64(uint64(size), k); overflow {
		return ErrAlphabetTooLarge
	}
	return nil
}
