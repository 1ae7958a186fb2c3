// Package simd provides the exact-match kernels: byte count, byte find and
// substring find over raw byte slices.
//
// Three tiers implement the same contract. The scalar tier uses SWAR
// (SIMD Within A Register) loops specialized for needles of 1-4 bytes and a
// fingerprint + verify kernel for longer needles. The AVX2 tier (32-byte
// lanes) and the NEON tier (16-byte lanes) scan the fingerprint at 32 or 16
// consecutive start offsets per step and hand any tail shorter than a step
// to the scalar tier, so all three return identical results.
//
// The tier is chosen once at package initialization from the CPU feature
// flags reported by golang.org/x/sys/cpu. Setting STRZL_NO_SIMD to a
// non-empty value forces the scalar tier.
//
// Every kernel returns len(haystack) when the needle is absent. Kernels
// never allocate, never retain their arguments and are safe for concurrent
// use.
package simd

import "os"

// Tier identifies a kernel implementation family.
type Tier uint8

const (
	// TierScalar is the portable SWAR implementation.
	TierScalar Tier = iota
	// TierAVX2 uses 32-byte lanes.
	TierAVX2
	// TierNEON uses 16-byte lanes.
	TierNEON
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierAVX2:
		return "avx2"
	case TierNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// noSIMDEnv disables the vector tiers when set to any non-empty value.
const noSIMDEnv = "STRZL_NO_SIMD"

// kernels is the dispatch table. It is written once by selectKernels during
// package initialization and only read afterwards.
type kernels struct {
	tier          Tier
	countByte     func(h []byte, c byte) int
	findByte      func(h []byte, c byte) int
	findSubstring func(h []byte, n Needle) int
}

var scalarKernels = kernels{
	tier:          TierScalar,
	countByte:     CountByteScalar,
	findByte:      FindByteScalar,
	findSubstring: FindSubstringScalar,
}

var impl = selectKernels(os.Getenv(noSIMDEnv) != "")

// ActiveTier returns the tier selected at start-up.
func ActiveTier() Tier {
	return impl.tier
}

// CountByte returns the number of bytes in h equal to c.
func CountByte(h []byte, c byte) int {
	return impl.countByte(h, c)
}

// FindByte returns the offset of the first c in h, or len(h) if c is not
// present.
//
// Example:
//
//	simd.FindByte([]byte("hello"), 'l') // 2
//	simd.FindByte([]byte("hello"), 'z') // 5
func FindByte(h []byte, c byte) int {
	return impl.findByte(h, c)
}

// FindSubstring returns the offset of the first occurrence of n in h, or
// len(h) if n is not present. An empty needle matches at offset 0.
//
// n.AnomalyOffset must satisfy the Needle invariant; use NewNeedle or
// NewNeedleAt to build a needle that does.
func FindSubstring(h []byte, n Needle) int {
	if len(n.Bytes) == 0 {
		return 0
	}
	return impl.findSubstring(h, n)
}
