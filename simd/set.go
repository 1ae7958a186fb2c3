package simd

import "math/bits"

// U8Set is a membership set over all 256 byte values. The zero value is
// the empty set.
type U8Set [4]uint64

// NewU8Set returns the set of bytes occurring in b.
func NewU8Set(b []byte) U8Set {
	var s U8Set
	s.AddBytes(b)
	return s
}

// Add inserts c.
func (s *U8Set) Add(c byte) {
	s[c>>6] |= 1 << (c & 63)
}

// AddBytes inserts every byte of b.
func (s *U8Set) AddBytes(b []byte) {
	for _, c := range b {
		s.Add(c)
	}
}

// Invert replaces the set with its complement.
func (s *U8Set) Invert() {
	for i := range s {
		s[i] = ^s[i]
	}
}

// Contains reports whether c is in the set.
func (s *U8Set) Contains(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

// Len returns the number of bytes in the set.
func (s *U8Set) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) +
		bits.OnesCount64(s[2]) + bits.OnesCount64(s[3])
}

// FindFromSet returns the offset of the first byte of h that is in s, or
// len(h) if there is none.
func FindFromSet(h []byte, s *U8Set) int {
	switch s.Len() {
	case 0:
		return len(h)
	case 1:
		return FindByte(h, s.first())
	}
	for i, c := range h {
		if s.Contains(c) {
			return i
		}
	}
	return len(h)
}

// FindNotFromSet returns the offset of the first byte of h that is not in
// s, or len(h) if every byte is in s.
func FindNotFromSet(h []byte, s *U8Set) int {
	for i, c := range h {
		if !s.Contains(c) {
			return i
		}
	}
	return len(h)
}

// first returns the smallest member. The set must be non-empty.
func (s *U8Set) first() byte {
	for i, w := range s {
		if w != 0 {
			return byte(i*64 + bits.TrailingZeros64(w))
		}
	}
	return 0
}
