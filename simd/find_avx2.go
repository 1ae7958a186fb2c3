package simd

import (
	"encoding/binary"
	"math/bits"
)

// avx2Width is the number of candidate start offsets examined per outer
// iteration of the 256-bit kernel.
const avx2Width = 32

// FindSubstringAVX2 is the 32-byte lane substring kernel.
//
// The fingerprint is broadcast to all eight 32-bit lanes. Four unaligned
// loads, each one byte further than the previous, compare 32 consecutive
// start offsets against it; the four masks are OR-ed into a single branch.
// Only when that branch fires are the starts whose lane hit verified, in
// increasing order.
//
// Needles shorter than 4 bytes and the final stretch of the haystack that
// cannot hold a whole window are delegated to FindSubstringScalar. The
// result is identical to FindSubstringScalar for every input.
func FindSubstringAVX2(h []byte, n Needle) int {
	nb := n.Bytes
	if len(nb) < 4 {
		return FindSubstringScalar(h, n)
	}

	off := n.AnomalyOffset
	fingerprint := set1x32(binary.LittleEndian.Uint32(nb[off:]))

	base := 0
	for ; base+len(nb)+avx2Width <= len(h); base += avx2Width {
		window := h[base+off:]
		m0 := loadu256(window[0:]).cmpeq32(fingerprint)
		m1 := loadu256(window[1:]).cmpeq32(fingerprint)
		m2 := loadu256(window[2:]).cmpeq32(fingerprint)
		m3 := loadu256(window[3:]).cmpeq32(fingerprint)

		if m0.or(m1).or(m2.or(m3)).any() {
			for hits := hitStarts256(m0, m1, m2, m3); hits != 0; hits &= hits - 1 {
				i := base + bits.TrailingZeros32(hits)
				if matchesAt(h, i, nb) {
					return i
				}
			}
		}
	}

	return base + FindSubstringScalar(h[base:], n)
}
