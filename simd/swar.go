package simd

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// wordSize is the width of one SWAR chunk. All short-needle kernels read the
// haystack as little-endian uint64 words, so byte k of a chunk lives in bits
// [8k, 8k+8) and bits.TrailingZeros64/8 yields the lowest matching offset.
const wordSize = 8

const (
	lo8  = 0x0101010101010101
	lo16 = 0x0001000100010001
	lo32 = 0x0000000100000001
)

// find4First maps the 4-bit indicator produced by find4SWAR (bit k set when
// a match starts at offset k of the chunk) to the lowest matching offset.
var find4First = [16]uint8{
	0b0000: 0, 0b0001: 0, 0b0010: 1, 0b0011: 0,
	0b0100: 2, 0b0101: 0, 0b0110: 1, 0b0111: 0,
	0b1000: 3, 0b1001: 0, 0b1010: 1, 0b1011: 0,
	0b1100: 2, 0b1101: 0, 0b1110: 1, 0b1111: 0,
}

// alignPrefix returns the number of leading bytes of b that precede the
// first address aligned to align, capped at len(b).
func alignPrefix(b []byte, align uintptr) int {
	if len(b) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	n := int((align - addr%align) % align)
	if n > len(b) {
		n = len(b)
	}
	return n
}

// broadcast8 replicates c into every byte of a word.
func broadcast8(c byte) uint64 {
	return uint64(c) * lo8
}

// eqBytes takes x = ^(chunk ^ pattern) and leaves 0x01 in every byte lane
// that was 0xFF, i.e. every byte where chunk and pattern agree.
func eqBytes(x uint64) uint64 {
	x &= x >> 1
	x &= x >> 2
	x &= x >> 4
	return x & lo8
}

// eqPairs is eqBytes for 16-bit lanes: bit 16j is set when both bytes of
// lane j agree. Callers mask off the lanes they do not own.
func eqPairs(x uint64) uint64 {
	x &= x >> 1
	x &= x >> 2
	x &= x >> 4
	x &= x >> 8
	return x & lo16
}

// eqTriples reduces x to per-byte equality bits and then ANDs three
// neighbouring bytes, keeping only the two 24-bit lanes that start at
// bytes 2 and 5.
func eqTriples(x uint64) uint64 {
	x &= x >> 1
	x &= x >> 2
	x &= x >> 4
	return (x >> 16) & (x >> 8) & x & 0x0000010000010000
}

// eqQuads is eqBytes for 32-bit lanes.
func eqQuads(x uint64) uint64 {
	x &= x >> 1
	x &= x >> 2
	x &= x >> 4
	x &= x >> 8
	x &= x >> 16
	return x & lo32
}

// countByteSWAR counts occurrences of c in h, eight bytes per step.
func countByteSWAR(h []byte, c byte) int {
	count := 0
	i := alignPrefix(h, wordSize)
	for _, b := range h[:i] {
		if b == c {
			count++
		}
	}

	pattern := broadcast8(c)
	for ; i+wordSize <= len(h); i += wordSize {
		chunk := binary.LittleEndian.Uint64(h[i:])
		count += bits.OnesCount64(eqBytes(^(chunk ^ pattern)))
	}

	for ; i < len(h); i++ {
		if h[i] == c {
			count++
		}
	}
	return count
}

// findByteSWAR returns the offset of the first c in h, or len(h).
func findByteSWAR(h []byte, c byte) int {
	i := alignPrefix(h, wordSize)
	for j := 0; j < i; j++ {
		if h[j] == c {
			return j
		}
	}

	pattern := broadcast8(c)
	for ; i+wordSize <= len(h); i += wordSize {
		chunk := binary.LittleEndian.Uint64(h[i:])
		if m := eqBytes(^(chunk ^ pattern)); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}

	for ; i < len(h); i++ {
		if h[i] == c {
			return i
		}
	}
	return len(h)
}

// find2SWAR returns the offset of the first n0,n1 pair in h, or len(h).
//
// Every chunk checks seven start offsets: the even lanes cover starts
// 0, 2, 4, 6 and the chunk shifted up by one byte covers 1, 3, 5.
func find2SWAR(h []byte, n0, n1 byte) int {
	pattern := uint64(n0) | uint64(n1)<<8
	pattern |= pattern << 16
	pattern |= pattern << 32

	i := 0
	for ; i+wordSize <= len(h); i += 7 {
		chunk := binary.LittleEndian.Uint64(h[i:])
		even := eqPairs(^(chunk ^ pattern))
		odd := eqPairs(^((chunk << 8) ^ pattern)) &^ 1
		if even|odd != 0 {
			return i + bits.TrailingZeros64(even|odd>>8)/8
		}
	}

	for ; i+2 <= len(h); i++ {
		if h[i] == n0 && h[i+1] == n1 {
			return i
		}
	}
	return len(h)
}

// find3SWAR returns the offset of the first n0,n1,n2 triple in h, or len(h).
//
// The pattern occupies bytes 2-4 and 5-7 of a word; comparing it against the
// chunk shifted by 0, 8 and 16 bits covers start offsets 2,5 then 1,4 then
// 0,3 respectively.
func find3SWAR(h []byte, n0, n1, n2 byte) int {
	pattern := uint64(n0) | uint64(n1)<<8 | uint64(n2)<<16
	pattern |= pattern << 24
	pattern <<= 16

	i := 0
	for ; i+wordSize <= len(h); i += 6 {
		chunk := binary.LittleEndian.Uint64(h[i:])
		first := eqTriples(^(chunk ^ pattern))
		second := eqTriples(^((chunk << 8) ^ pattern))
		third := eqTriples(^((chunk << 16) ^ pattern))
		if m := first | second>>8 | third>>16; m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}

	for ; i+3 <= len(h); i++ {
		if h[i] == n0 && h[i+1] == n1 && h[i+2] == n2 {
			return i
		}
	}
	return len(h)
}

// find4SWAR returns the offset of the first occurrence of the 4-byte needle
// n in h, or len(h).
//
// Each chunk is rearranged into two words holding the 32-bit windows that
// start at offsets 0,1 and 2,3, so one 64-bit comparison tests two starts.
func find4SWAR(h, n []byte) int {
	i := 0
	for lead := alignPrefix(h, wordSize); i < lead && i+4 <= len(h); i++ {
		if h[i] == n[0] && h[i+1] == n[1] && h[i+2] == n[2] && h[i+3] == n[3] {
			return i
		}
	}

	pattern := uint64(binary.LittleEndian.Uint32(n))
	pattern |= pattern << 32

	for ; i+wordSize <= len(h); i += 4 {
		chunk := binary.LittleEndian.Uint64(h[i:])
		h01 := chunk&0x00000000FFFFFFFF | (chunk&0x000000FFFFFFFF00)<<24
		h23 := (chunk&0x0000FFFFFFFF0000)>>16 | (chunk&0x00FFFFFFFF000000)<<8
		e01 := eqQuads(^(h01 ^ pattern))
		e23 := eqQuads(^(h23 ^ pattern))
		if e01|e23 != 0 {
			m := uint8(e01 | e01>>31 | e23<<2 | e23>>29)
			return i + int(find4First[m&0xF])
		}
	}

	for ; i+4 <= len(h); i++ {
		if h[i] == n[0] && h[i+1] == n[1] && h[i+2] == n[2] && h[i+3] == n[3] {
			return i
		}
	}
	return len(h)
}
