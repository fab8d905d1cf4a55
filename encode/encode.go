// Package encode translates raw sequence bytes into small alphabet-id
// codes in bulk, via a 256-entry lookup table built by alphabet.Table. It
// uses sync.Once CPU-feature detection to pick between a word-at-a-time
// (8-byte) translation loop and a plain byte loop — the closest honest win
// reachable without hand-written assembly intrinsics.
package encode

import (
	"runtime"
	"sync"
)

// Implementation identifies which Translate loop DetectFeatures selected.
const (
	ImplGeneric = iota // one byte at a time
	ImplWide           // eight bytes at a time
)

// Features records which CPU capabilities were found at detection time.
type Features struct {
	HasSSE2  bool
	HasNEON  bool
	WideImpl bool
}

var (
	isAMD64 = runtime.GOARCH == "amd64"
	isARM64 = runtime.GOARCH == "arm64"

	hasSSE2 bool
	hasNEON bool

	detectOnce sync.Once
)

// DetectFeatures runs (once) the architecture-specific detection in
// cpu_amd64.go / cpu_arm64.go / cpu_other.go and returns the result.
func DetectFeatures() Features {
	detectOnce.Do(detectCPUFeatures)
	return Features{
		HasSSE2:  hasSSE2,
		HasNEON:  hasNEON,
		WideImpl: hasSSE2 || hasNEON,
	}
}

func detectCPUFeatures() {
	if isAMD64 {
		hasSSE2 = true // always true per the amd64 ABI
	}
	if isARM64 {
		hasNEON = true // always true on arm64
	}
	detectCPUFeaturesImpl()
}

// BestImplementation returns the loop Translate will use on this CPU.
func BestImplementation() int {
	if DetectFeatures().WideImpl {
		return ImplWide
	}
	return ImplGeneric
}

// Translate maps src[i] through table into dst[i] for every byte, using an
// 8-byte-wide loop when the CPU detection picked ImplWide and a plain byte
// loop otherwise. dst and src must have equal length; Translate panics if
// they don't, since a length mismatch is always a programmer error, never
// a runtime condition worth recovering from.
func Translate(dst, src []byte, table [256]byte) {
	if len(dst) != len(src) {
		panic("encode: dst and src length mismatch")
	}
	if BestImplementation() == ImplWide {
		translateWide(dst, src, table)
		return
	}
	translateGeneric(dst, src, table)
}

func translateGeneric(dst, src []byte, table [256]byte) {
	for i, b := range src {
		dst[i] = table[b]
	}
}

// translateWide unrolls the loop eight bytes at a time; it is not an actual
// SIMD gather (Go has no portable intrinsic for one), but it reduces loop
// overhead and bounds-check count on the CPUs DetectFeatures identifies as
// capable.
func translateWide(dst, src []byte, table [256]byte) {
	n := len(src)
	i := 0
	for ; i+8 <= n; i += 8 {
		dst[i] = table[src[i]]
		dst[i+1] = table[src[i+1]]
		dst[i+2] = table[src[i+2]]
		dst[i+3] = table[src[i+3]]
		dst[i+4] = table[src[i+4]]
		dst[i+5] = table[src[i+5]]
		dst[i+6] = table[src[i+6]]
		dst[i+7] = table[src[i+7]]
	}
	for ; i < n; i++ {
		dst[i] = table[src[i]]
	}
}
