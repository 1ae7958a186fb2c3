// Package conv provides checked integer conversions for the C boundary.
//
// Lengths and offsets cross the boundary as C size_t and live in Go as int.
// These functions perform bounds checking before narrowing and panic on
// overflow, since a length that does not fit indicates a caller bug.
package conv

import "math"

// SizeToInt safely converts a size_t value to int.
// Panics if n > math.MaxInt.
//
//go:inline
func SizeToInt(n uint64) int {
	if n > math.MaxInt {
		panic("integer overflow: size value out of int range")
	}
	return int(n)
}

// IntToSize safely converts a non-negative int to a size_t value.
// Panics if n < 0.
//
//go:inline
func IntToSize(n int) uint64 {
	if n < 0 {
		panic("integer overflow: negative int cannot be a size")
	}
	return uint64(n)
}

// SizeToOffset converts a size_t anomaly offset to int, panicking when it
// cannot index a needle of length n. Needles shorter than 4 bytes have no
// fingerprint and always get offset 0.
func SizeToOffset(off uint64, n int) int {
	if n < 4 {
		return 0
	}
	o := SizeToInt(off)
	if o > n-4 {
		panic("offset out of range: anomaly offset past last fingerprint window")
	}
	return o
}
