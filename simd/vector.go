package simd

import "encoding/binary"

// Go exposes no vector intrinsics, so the vector tiers model a register as
// an array of 64-bit words and implement the few lane operations they need
// (broadcast, unaligned load, lane equality, any-lane test) with exact
// word-parallel arithmetic. Lane layout matches the hardware: byte k of the
// register is byte k of memory.

// vec256 models a 256-bit register (eight 32-bit lanes, 32 byte lanes).
type vec256 [4]uint64

// vec128 models a 128-bit register (four 32-bit lanes, 16 byte lanes).
type vec128 [2]uint64

const (
	low7x8  = 0x7F7F7F7F7F7F7F7F
	low31x2 = 0x7FFFFFFF7FFFFFFF
)

// zeroLanes32 sets the top bit of every 32-bit lane of x that is zero and
// clears everything else. Masking off each lane's top bit before the add
// keeps carries from crossing lanes, so the result is exact.
func zeroLanes32(x uint64) uint64 {
	return ^((x&low31x2 + low31x2) | x | low31x2)
}

// zeroLanes8 is zeroLanes32 for byte lanes.
func zeroLanes8(x uint64) uint64 {
	return ^((x&low7x8 + low7x8) | x | low7x8)
}

func set1x32(v uint32) uint64 {
	return uint64(v) | uint64(v)<<32
}

func loadu256(b []byte) vec256 {
	_ = b[31]
	return vec256{
		binary.LittleEndian.Uint64(b[0:]),
		binary.LittleEndian.Uint64(b[8:]),
		binary.LittleEndian.Uint64(b[16:]),
		binary.LittleEndian.Uint64(b[24:]),
	}
}

func loadu128(b []byte) vec128 {
	_ = b[15]
	return vec128{
		binary.LittleEndian.Uint64(b[0:]),
		binary.LittleEndian.Uint64(b[8:]),
	}
}

// cmpeq32 compares every 32-bit lane of v with the broadcast word w and
// leaves a non-zero lane where they are equal.
func (v vec256) cmpeq32(w uint64) vec256 {
	return vec256{
		zeroLanes32(v[0] ^ w),
		zeroLanes32(v[1] ^ w),
		zeroLanes32(v[2] ^ w),
		zeroLanes32(v[3] ^ w),
	}
}

func (v vec256) or(o vec256) vec256 {
	return vec256{v[0] | o[0], v[1] | o[1], v[2] | o[2], v[3] | o[3]}
}

func (v vec256) any() bool {
	return v[0]|v[1]|v[2]|v[3] != 0
}

func (v vec128) cmpeq32(w uint64) vec128 {
	return vec128{zeroLanes32(v[0] ^ w), zeroLanes32(v[1] ^ w)}
}

// cmpeq8 compares every byte lane of v with the broadcast word w and sets
// matching lanes to 0xFF, like a byte-wise compare-equal instruction.
func (v vec128) cmpeq8(w uint64) vec128 {
	return vec128{
		(zeroLanes8(v[0]^w) >> 7) * 0xFF,
		(zeroLanes8(v[1]^w) >> 7) * 0xFF,
	}
}

func (v vec128) or(o vec128) vec128 {
	return vec128{v[0] | o[0], v[1] | o[1]}
}

func (v vec128) any() bool {
	return v[0]|v[1] != 0
}

// lanes32 packs the top bit of each 32-bit lane into bit j of the result,
// like a movemask over lanes.
func (v vec256) lanes32() uint32 {
	var m uint32
	for w, x := range v {
		m |= uint32(x>>31&1)<<(2*w) | uint32(x>>63)<<(2*w+1)
	}
	return m
}

func (v vec128) lanes32() uint32 {
	return uint32(v[0]>>31&1) | uint32(v[0]>>63)<<1 |
		uint32(v[1]>>31&1)<<2 | uint32(v[1]>>63)<<3
}

// spreadLanes moves bit j of m to bit 4j.
func spreadLanes(m uint32) uint32 {
	var r uint32
	for j := 0; m != 0; j, m = j+1, m>>1 {
		r |= (m & 1) << (4 * j)
	}
	return r
}

// hitStarts256 turns the masks of four loads shifted by 0..3 bytes into a
// bitmap of candidate start offsets: lane j of load k is start 4j+k.
func hitStarts256(m0, m1, m2, m3 vec256) uint32 {
	return spreadLanes(m0.lanes32()) |
		spreadLanes(m1.lanes32())<<1 |
		spreadLanes(m2.lanes32())<<2 |
		spreadLanes(m3.lanes32())<<3
}

func hitStarts128(m0, m1, m2, m3 vec128) uint16 {
	return uint16(spreadLanes(m0.lanes32()) |
		spreadLanes(m1.lanes32())<<1 |
		spreadLanes(m2.lanes32())<<2 |
		spreadLanes(m3.lanes32())<<3)
}
