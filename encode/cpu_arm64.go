//go:build arm64
// +build arm64

package encode

// detectCPUFeaturesImpl: all arm64 platforms have NEON, already set in the
// architecture-independent default.
func detectCPUFeaturesImpl() {
	hasNEON = true
}
