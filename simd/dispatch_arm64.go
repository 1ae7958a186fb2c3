//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// hasASIMD is always true on ARMv8-A, but some emulators and stripped
// kernels misreport it.
var hasASIMD = cpu.ARM64.HasASIMD

// selectKernels picks the NEON substring and count kernels when available.
func selectKernels(noSIMD bool) kernels {
	if noSIMD || !hasASIMD {
		return scalarKernels
	}
	k := scalarKernels
	k.tier = TierNEON
	k.countByte = CountByteNEON
	k.findSubstring = FindSubstringNEON
	return k
}
