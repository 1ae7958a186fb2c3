package simd

import (
	"bytes"
	"encoding/binary"
)

// FindSubstringScalar returns the offset of the first occurrence of n in h,
// or len(h) when n does not occur. An empty needle matches at offset 0.
//
// Needles of length 1-4 use the hand-specialized SWAR loops; longer needles
// use the anomaly fingerprint kernel. This is also the tail path of both
// vector kernels, so every tier agrees on every input.
func FindSubstringScalar(h []byte, n Needle) int {
	nb := n.Bytes
	if len(nb) == 0 {
		return 0
	}
	if len(h) < len(nb) {
		return len(h)
	}

	switch len(nb) {
	case 1:
		return findByteSWAR(h, nb[0])
	case 2:
		return find2SWAR(h, nb[0], nb[1])
	case 3:
		return find3SWAR(h, nb[0], nb[1], nb[2])
	case 4:
		return find4SWAR(h, nb)
	default:
		return findAnomaly(h, n)
	}
}

// FindByteScalar returns the offset of the first c in h, or len(h).
func FindByteScalar(h []byte, c byte) int {
	return findByteSWAR(h, c)
}

// CountByteScalar returns the number of bytes in h equal to c.
func CountByteScalar(h []byte, c byte) int {
	return countByteSWAR(h, c)
}

// findAnomaly is the generic fingerprint + verify kernel.
//
// The 4 needle bytes at AnomalyOffset form the fingerprint. For every
// candidate start the haystack window at start+AnomalyOffset is compared
// against it; on a hit the needle suffix after the fingerprint is checked
// first and the prefix before it second.
func findAnomaly(h []byte, n Needle) int {
	nb := n.Bytes
	off := n.AnomalyOffset
	if len(h) < len(nb) {
		return len(h)
	}

	fingerprint := binary.LittleEndian.Uint32(nb[off:])
	prefix := nb[:off]
	suffix := nb[off+4:]

	last := len(h) - len(nb)
	for start := 0; start <= last; start++ {
		window := h[start+off:]
		if binary.LittleEndian.Uint32(window) != fingerprint {
			continue
		}
		if !bytes.Equal(window[4:4+len(suffix)], suffix) {
			continue
		}
		if !bytes.Equal(h[start:start+off], prefix) {
			continue
		}
		return start
	}
	return len(h)
}

// matchesAt reports whether nb occurs in h at offset i. The caller
// guarantees i+len(nb) <= len(h).
func matchesAt(h []byte, i int, nb []byte) bool {
	return bytes.Equal(h[i:i+len(nb)], nb)
}
