package main

import (
	"unsafe"

	"github.com/coregx/strzl/internal/conv"
	"github.com/coregx/strzl/simd"
)

// The exported functions are thin cgo shims over these, which keeps the
// size_t conversions testable without cgo in the test files.

// borrow views n bytes at p without copying. A nil pointer or zero length
// is an empty buffer.
func borrow(p unsafe.Pointer, n uint64) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), conv.SizeToInt(n))
}

func countChar(h []byte, c byte) uint64 {
	return conv.IntToSize(simd.CountByte(h, c))
}

func findChar(h []byte, c byte) uint64 {
	return conv.IntToSize(simd.FindByte(h, c))
}

func findSubstr(h, n []byte, anomalyOffset uint64) uint64 {
	needle := simd.Needle{Bytes: n, AnomalyOffset: conv.SizeToOffset(anomalyOffset, len(n))}
	return conv.IntToSize(simd.FindSubstring(h, needle))
}
