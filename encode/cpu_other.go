//go:build !amd64 && !arm64
// +build !amd64,!arm64

package encode

// detectCPUFeaturesImpl: no wide-translation path on unrecognized
// architectures.
func detectCPUFeaturesImpl() {
}
