package simd

import (
	"encoding/binary"
	"math/bits"
)

// neonWidth is the number of candidate start offsets examined per outer
// iteration of the 128-bit kernel, and the byte width of one count step.
const neonWidth = 16

// FindSubstringNEON is the 16-byte lane substring kernel. It follows the
// same four-shifted-loads scheme as FindSubstringAVX2 with four 32-bit
// lanes per register, and falls back to FindSubstringScalar for short
// needles and for the haystack tail.
func FindSubstringNEON(h []byte, n Needle) int {
	nb := n.Bytes
	if len(nb) < 4 {
		return FindSubstringScalar(h, n)
	}

	off := n.AnomalyOffset
	fingerprint := set1x32(binary.LittleEndian.Uint32(nb[off:]))

	base := 0
	for ; base+len(nb)+neonWidth <= len(h); base += neonWidth {
		window := h[base+off:]
		m0 := loadu128(window[0:]).cmpeq32(fingerprint)
		m1 := loadu128(window[1:]).cmpeq32(fingerprint)
		m2 := loadu128(window[2:]).cmpeq32(fingerprint)
		m3 := loadu128(window[3:]).cmpeq32(fingerprint)

		if m0.or(m1).or(m2.or(m3)).any() {
			for hits := hitStarts128(m0, m1, m2, m3); hits != 0; hits &= hits - 1 {
				i := base + bits.TrailingZeros16(hits)
				if matchesAt(h, i, nb) {
					return i
				}
			}
		}
	}

	return base + FindSubstringScalar(h[base:], n)
}

// CountByteNEON counts occurrences of c in h sixteen bytes at a time.
//
// Bytes before the first 16-byte aligned address and the trailing bytes
// that do not fill a register are counted by the scalar kernel. In the
// aligned body every equal byte becomes a 0xFF lane, so the popcount of a
// 64-bit half divided by 8 is the number of matches in that half.
func CountByteNEON(h []byte, c byte) int {
	lead := alignPrefix(h, neonWidth)
	count := countByteSWAR(h[:lead], c)
	if lead == len(h) {
		return count
	}

	pattern := broadcast8(c)
	i := lead
	for ; i+neonWidth <= len(h); i += neonWidth {
		eq := loadu128(h[i:]).cmpeq8(pattern)
		count += bits.OnesCount64(eq[0])/8 + bits.OnesCount64(eq[1])/8
	}

	return count + countByteSWAR(h[i:], c)
}
