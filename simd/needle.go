package simd

import (
	"errors"
	"fmt"
)

// Needle errors
var (
	// ErrAnomalyOffset indicates a fingerprint offset outside [0, len-4]
	ErrAnomalyOffset = errors.New("anomaly offset out of range")
)

// NeedleError wraps needle construction errors with the offending input
type NeedleError struct {
	Needle []byte
	Offset int
	Err    error
}

// Error implements the error interface
func (e *NeedleError) Error() string {
	return fmt.Sprintf("invalid needle %q at offset %d: %v", e.Needle, e.Offset, e.Err)
}

// Unwrap returns the underlying error
func (e *NeedleError) Unwrap() error {
	return e.Err
}

// Needle describes a substring to search for.
//
// Bytes is borrowed, not copied; it must stay unmodified while the needle is
// in use. For needles of 4 or more bytes the kernels pre-filter candidates
// with the 4-byte fingerprint Bytes[AnomalyOffset:AnomalyOffset+4], so
// AnomalyOffset must lie in [0, len(Bytes)-4]. For shorter needles it is
// ignored and kept at 0.
type Needle struct {
	Bytes         []byte
	AnomalyOffset int
}

// NewNeedle returns a needle whose fingerprint is the rarest 4-byte window
// of b according to ByteFrequencies.
func NewNeedle(b []byte) Needle {
	return Needle{Bytes: b, AnomalyOffset: SelectAnomaly(b)}
}

// NewNeedleAt returns a needle fingerprinted at the caller-chosen offset.
func NewNeedleAt(b []byte, offset int) (Needle, error) {
	if len(b) < 4 {
		if offset != 0 {
			return Needle{}, &NeedleError{Needle: b, Offset: offset, Err: ErrAnomalyOffset}
		}
		return Needle{Bytes: b}, nil
	}
	if offset < 0 || offset > len(b)-4 {
		return Needle{}, &NeedleError{Needle: b, Offset: offset, Err: ErrAnomalyOffset}
	}
	return Needle{Bytes: b, AnomalyOffset: offset}, nil
}

// PrefixNeedle returns a needle fingerprinted by its first four bytes.
func PrefixNeedle(b []byte) Needle {
	return Needle{Bytes: b}
}

// Len returns the needle length in bytes.
func (n Needle) Len() int {
	return len(n.Bytes)
}

// Valid reports whether the anomaly offset satisfies the fingerprint
// invariant for the needle length.
func (n Needle) Valid() bool {
	if len(n.Bytes) < 4 {
		return n.AnomalyOffset == 0
	}
	return n.AnomalyOffset >= 0 && n.AnomalyOffset <= len(n.Bytes)-4
}
