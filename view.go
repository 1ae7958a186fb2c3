// Package strzl provides a non-owning byte string view whose search
// operations run on the kernels of package simd.
//
// A View borrows its bytes; it never copies or modifies them, and it must not
// outlive the buffer it was created from. Search methods return offsets
// relative to the start of the view, or NPos when nothing is found.
//
// Basic usage:
//
//	v := strzl.ViewString("GET /index.html HTTP/1.1")
//	v.Find([]byte("HTTP"))  // 16
//	v.Contains([]byte("POST")) // false
//
//	for off := range strzl.Matches([]byte("abcabc"), []byte("bc")) {
//		fmt.Println(off) // 1, 4
//	}
package strzl

import (
	"bytes"
	"hash/maphash"
	"iter"
	"unsafe"

	"github.com/coregx/strzl/simd"
)

// NPos is returned by the search methods of View when nothing is found.
const NPos = -1

// hashSeed is fixed for the lifetime of the process, so equal views hash
// equally within a process but not across processes.
var hashSeed = maphash.MakeSeed()

// View is a non-owning window over a byte buffer.
//
// The zero value is an empty view.
type View struct {
	data []byte
}

// NewView returns a view over b.
func NewView(b []byte) View {
	return View{data: b}
}

// ViewString returns a view over the bytes of s without copying them.
func ViewString(s string) View {
	return View{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Bytes returns the viewed bytes. The caller must not modify them.
func (v View) Bytes() []byte { return v.data }

// String returns a copy of the viewed bytes as a string.
func (v View) String() string { return string(v.data) }

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.data) }

// Empty reports whether the view has no bytes.
func (v View) Empty() bool { return len(v.data) == 0 }

// At returns the byte at pos.
func (v View) At(pos int) byte { return v.data[pos] }

// Front returns the first byte. The view must not be empty.
func (v View) Front() byte { return v.data[0] }

// Back returns the last byte. The view must not be empty.
func (v View) Back() byte { return v.data[len(v.data)-1] }

// RemovePrefix drops the first n bytes. It panics if n exceeds Len.
func (v *View) RemovePrefix(n int) {
	if n < 0 || n > len(v.data) {
		panic("strzl: RemovePrefix out of range")
	}
	v.data = v.data[n:]
}

// RemoveSuffix drops the last n bytes. It panics if n exceeds Len.
func (v *View) RemoveSuffix(n int) {
	if n < 0 || n > len(v.data) {
		panic("strzl: RemoveSuffix out of range")
	}
	v.data = v.data[:len(v.data)-n]
}

// Substr returns the view of at most count bytes starting at pos. A count
// running past the end is clipped; pos must not exceed Len.
func (v View) Substr(pos, count int) View {
	rest := v.data[pos:]
	if count < len(rest) {
		rest = rest[:count]
	}
	return View{data: rest}
}

// Compare orders two views lexicographically, shorter first on a common
// prefix. The result is 0 if v == o, -1 if v < o, and +1 if v > o.
func (v View) Compare(o View) int {
	return bytes.Compare(v.data, o.data)
}

// Equal reports whether both views hold the same bytes.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.data, o.data)
}

// HasPrefix reports whether the view starts with p.
func (v View) HasPrefix(p []byte) bool {
	return bytes.HasPrefix(v.data, p)
}

// HasSuffix reports whether the view ends with s.
func (v View) HasSuffix(s []byte) bool {
	return bytes.HasSuffix(v.data, s)
}

// Find returns the offset of the first occurrence of n, or NPos. An empty
// n is found at offset 0.
func (v View) Find(n []byte) int {
	return v.FindNeedle(simd.NewNeedle(n))
}

// FindNeedle is Find with a prepared needle, for callers that search for
// the same needle many times.
func (v View) FindNeedle(n simd.Needle) int {
	if n.Len() == 0 {
		return 0
	}
	return toNPos(simd.FindSubstring(v.data, n), len(v.data))
}

// FindFrom returns the offset of the first occurrence of n at or after pos,
// or NPos. The offset is relative to the start of the view.
func (v View) FindFrom(n []byte, pos int) int {
	if pos > len(v.data) {
		return NPos
	}
	i := v.Substr(pos, len(v.data)).Find(n)
	if i == NPos {
		return NPos
	}
	return pos + i
}

// FindByte returns the offset of the first c, or NPos.
func (v View) FindByte(c byte) int {
	return toNPos(simd.FindByte(v.data, c), len(v.data))
}

// FindByteFrom returns the offset of the first c at or after pos, or NPos.
// The offset is relative to the start of the view.
func (v View) FindByteFrom(c byte, pos int) int {
	if pos > len(v.data) {
		return NPos
	}
	i := v.Substr(pos, len(v.data)).FindByte(c)
	if i == NPos {
		return NPos
	}
	return pos + i
}

// RFind returns the offset of the last occurrence of n, or NPos. An empty n
// is found at Len.
func (v View) RFind(n []byte) int {
	return bytes.LastIndex(v.data, n)
}

// RFindFrom returns the offset of the last occurrence of n that starts at or
// before pos, or NPos.
func (v View) RFindFrom(n []byte, pos int) int {
	if pos < 0 {
		return NPos
	}
	return bytes.LastIndex(v.data[:min(pos+len(n), len(v.data))], n)
}

// RFindByte returns the offset of the last c, or NPos.
func (v View) RFindByte(c byte) int {
	return bytes.LastIndexByte(v.data, c)
}

// Contains reports whether n occurs in the view.
func (v View) Contains(n []byte) bool {
	return v.Find(n) != NPos
}

// ContainsByte reports whether c occurs in the view.
func (v View) ContainsByte(c byte) bool {
	return v.FindByte(c) != NPos
}

// CountByte returns the number of bytes equal to c.
func (v View) CountByte(c byte) int {
	return simd.CountByte(v.data, c)
}

// CharacterSet returns the set of byte values present in the view.
func (v View) CharacterSet() simd.U8Set {
	return simd.NewU8Set(v.data)
}

// FindFirstOf returns the offset of the first byte that occurs in chars, or
// NPos.
func (v View) FindFirstOf(chars []byte) int {
	set := simd.NewU8Set(chars)
	return v.FindFirstOfSet(&set)
}

// FindFirstNotOf returns the offset of the first byte that does not occur in
// chars, or NPos.
func (v View) FindFirstNotOf(chars []byte) int {
	set := simd.NewU8Set(chars)
	return toNPos(simd.FindNotFromSet(v.data, &set), len(v.data))
}

// FindFirstOfSet returns the offset of the first byte in set, or NPos.
func (v View) FindFirstOfSet(set *simd.U8Set) int {
	return toNPos(simd.FindFromSet(v.data, set), len(v.data))
}

// FindLastOf returns the offset of the last byte that occurs in chars, or
// NPos.
func (v View) FindLastOf(chars []byte) int {
	set := simd.NewU8Set(chars)
	for i := len(v.data) - 1; i >= 0; i-- {
		if set.Contains(v.data[i]) {
			return i
		}
	}
	return NPos
}

// FindLastNotOf returns the offset of the last byte that does not occur in
// chars, or NPos.
func (v View) FindLastNotOf(chars []byte) int {
	set := simd.NewU8Set(chars)
	for i := len(v.data) - 1; i >= 0; i-- {
		if !set.Contains(v.data[i]) {
			return i
		}
	}
	return NPos
}

// TrimLeft returns the view without leading bytes that occur in chars.
func (v View) TrimLeft(chars []byte) View {
	i := v.FindFirstNotOf(chars)
	if i == NPos {
		return View{data: v.data[len(v.data):]}
	}
	return View{data: v.data[i:]}
}

// TrimRight returns the view without trailing bytes that occur in chars.
func (v View) TrimRight(chars []byte) View {
	return View{data: v.data[:v.FindLastNotOf(chars)+1]}
}

// Trim strips bytes in chars from both ends.
func (v View) Trim(chars []byte) View {
	return v.TrimLeft(chars).TrimRight(chars)
}

// Hash returns a process-local hash of the viewed bytes.
func (v View) Hash() uint64 {
	return maphash.Bytes(hashSeed, v.data)
}

// Matches iterates over the start offsets of every, possibly overlapping,
// occurrence of n in the view.
func (v View) Matches(n []byte) iter.Seq[int] {
	return Matches(v.data, n)
}

// RMatches is Matches in decreasing offset order.
func (v View) RMatches(n []byte) iter.Seq[int] {
	return RMatches(v.data, n)
}

func toNPos(off, sentinel int) int {
	if off == sentinel {
		return NPos
	}
	return off
}
