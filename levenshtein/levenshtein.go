// Package levenshtein computes bounded byte-level edit distances.
//
// The dynamic program keeps two rows of the edit matrix in scratch memory
// obtained from a caller-supplied Allocator, so long-running services can
// route the scratch space through their own arenas.
package levenshtein

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAllocation indicates the allocator could not provide scratch memory
var ErrAllocation = errors.New("scratch allocation failed")

// AllocationError wraps ErrAllocation with the requested size
type AllocationError struct {
	Requested int
	Got       int
}

// Error implements the error interface
func (e *AllocationError) Error() string {
	return fmt.Sprintf("levenshtein: %v: requested %d cells, got %d", ErrAllocation, e.Requested, e.Got)
}

// Unwrap returns the underlying error
func (e *AllocationError) Unwrap() error {
	return ErrAllocation
}

// Allocator provides scratch memory for the distance computation.
//
// Allocate returns a slice of at least n elements, or nil when memory is
// unavailable. Every slice returned by Allocate is passed to Release exactly
// once, after the computation no longer uses it.
type Allocator interface {
	Allocate(n int) []int
	Release(buf []int)
}

// poolAllocator recycles scratch rows through a sync.Pool.
type poolAllocator struct {
	pool sync.Pool
}

func (p *poolAllocator) Allocate(n int) []int {
	if bp, ok := p.pool.Get().(*[]int); ok && cap(*bp) >= n {
		return (*bp)[:n]
	}
	return make([]int, n)
}

func (p *poolAllocator) Release(buf []int) {
	p.pool.Put(&buf)
}

// DefaultAllocator is used when Bounded is given a nil Allocator.
var DefaultAllocator Allocator = &poolAllocator{}

// Bounded returns the Levenshtein distance between a and b, capped at
// bound: the result is min(distance, bound). The computation stops as soon
// as every cell of a row reaches bound, so small bounds make unrelated
// inputs cheap to reject.
//
// A nil alloc uses DefaultAllocator. If the allocator returns fewer cells
// than requested, Bounded returns an *AllocationError.
func Bounded(a, b []byte, bound int, alloc Allocator) (int, error) {
	if bound <= 0 {
		return 0, nil
	}
	// Keep the rows as short as possible.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(a)-len(b) >= bound {
		return bound, nil
	}
	if len(b) == 0 {
		return len(a), nil
	}

	if alloc == nil {
		alloc = DefaultAllocator
	}
	cols := len(b) + 1
	buf := alloc.Allocate(2 * cols)
	if buf == nil {
		return 0, &AllocationError{Requested: 2 * cols}
	}
	defer alloc.Release(buf)
	if len(buf) < 2*cols {
		return 0, &AllocationError{Requested: 2 * cols, Got: len(buf)}
	}

	prev, cur := buf[:cols], buf[cols:2*cols]
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j < cols; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin >= bound {
			return bound, nil
		}
		prev, cur = cur, prev
	}

	return min(prev[cols-1], bound), nil
}

// Distance returns the unbounded Levenshtein distance using
// DefaultAllocator.
func Distance(a, b []byte) int {
	// The distance never exceeds the longer input.
	d, _ := Bounded(a, b, max(len(a), len(b))+1, nil)
	return d
}
