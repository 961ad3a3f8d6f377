//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads the arm64 capability bits. NEON (Advanced SIMD)
// is mandatory on ARMv8, so width resolution sees 128-bit registers on every
// arm64 host.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
