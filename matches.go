package strzl

import (
	"bytes"
	"iter"

	"github.com/coregx/strzl/simd"
)

// Matches returns an iterator over the start offsets of every occurrence of
// n in h, in increasing order. Occurrences may overlap: after each match the
// search resumes one byte past its start.
//
// An empty n matches at every offset in [0, len(h)).
//
// The iterator is lazy; h is searched only as far as the consumer reads.
func Matches(h, n []byte) iter.Seq[int] {
	return MatchesNeedle(h, simd.NewNeedle(n))
}

// MatchesNeedle is Matches with a prepared needle.
func MatchesNeedle(h []byte, needle simd.Needle) iter.Seq[int] {
	return func(yield func(int) bool) {
		for base := 0; base < len(h); base++ {
			i := 0
			if needle.Len() > 0 {
				i = simd.FindSubstring(h[base:], needle)
				if i == len(h)-base {
					return
				}
			}
			base += i
			if !yield(base) {
				return
			}
		}
	}
}

// RMatches returns an iterator over the start offsets of every, possibly
// overlapping, occurrence of n in h, in decreasing order. It yields the same
// offsets as Matches.
func RMatches(h, n []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(n) == 0 {
			for i := len(h) - 1; i >= 0; i-- {
				if !yield(i) {
					return
				}
			}
			return
		}
		// The next match must start before i, so it ends before i+len(n).
		end := len(h)
		for {
			i := bytes.LastIndex(h[:end], n)
			if i < 0 || !yield(i) {
				return
			}
			end = i + len(n) - 1
		}
	}
}

// CharMatches returns an iterator over the offsets of every byte of h that
// is a member of set.
func CharMatches(h []byte, set simd.U8Set) iter.Seq[int] {
	return func(yield func(int) bool) {
		for base := 0; base < len(h); base++ {
			i := simd.FindFromSet(h[base:], &set)
			if i == len(h)-base {
				return
			}
			base += i
			if !yield(base) {
				return
			}
		}
	}
}

// Count returns the number of, possibly overlapping, occurrences of n in h.
func Count(h, n []byte) int {
	count := 0
	for range Matches(h, n) {
		count++
	}
	return count
}
