// libstrzl exposes the search kernels through a flat C ABI.
//
// Build with:
//
//	go build -buildmode=c-shared -o libstrzl.so ./cmd/libstrzl
//
// All lengths and offsets are size_t. Functions that search return the
// haystack length when nothing is found, and never retain the buffers they
// are given.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/coregx/strzl/simd"
)

// tierName is allocated once and never freed, so callers may keep the
// pointer returned by strzl_tier for the lifetime of the process.
var tierName = C.CString(simd.ActiveTier().String())

func main() {}

func view(p unsafe.Pointer, n C.size_t) []byte {
	return borrow(p, uint64(n))
}

//export strzl_count_char
func strzl_count_char(h *C.char, hLen C.size_t, c C.char) C.size_t { //nolint:revive // C naming
	return C.size_t(countChar(view(unsafe.Pointer(h), hLen), byte(c)))
}

//export strzl_find_char
func strzl_find_char(h *C.char, hLen C.size_t, c C.char) C.size_t { //nolint:revive // C naming
	return C.size_t(findChar(view(unsafe.Pointer(h), hLen), byte(c)))
}

//export strzl_find_substr
func strzl_find_substr(h *C.char, hLen C.size_t, n *C.char, nLen C.size_t, anomalyOffset C.size_t) C.size_t { //nolint:revive // C naming
	return C.size_t(findSubstr(
		view(unsafe.Pointer(h), hLen),
		view(unsafe.Pointer(n), nLen),
		uint64(anomalyOffset),
	))
}

//export strzl_tier
func strzl_tier() *C.char { //nolint:revive // C naming
	return tierName
}
