//go:build amd64
// +build amd64

package encode

import "golang.org/x/sys/cpu"

// detectCPUFeaturesImpl refines the amd64 defaults using runtime detection.
func detectCPUFeaturesImpl() {
	hasSSE2 = cpu.X86.HasSSE2 // always true on amd64, kept for parity with x/sys
}
