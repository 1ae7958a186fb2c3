//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasAVX2 indicates whether the CPU supports AVX2 instructions (256-bit SIMD).
// AVX2 was introduced in Intel Haswell (2013) and AMD Excavator (2015).
var hasAVX2 = cpu.X86.HasAVX2

// selectKernels picks the AVX2 substring kernel when available. Byte count
// and byte find stay on the SWAR loops, which have no 32-byte counterpart.
func selectKernels(noSIMD bool) kernels {
	if noSIMD || !hasAVX2 {
		return scalarKernels
	}
	k := scalarKernels
	k.tier = TierAVX2
	k.findSubstring = FindSubstringAVX2
	return k
}
