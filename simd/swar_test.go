package simd

import (
	"bytes"
	"testing"
)

// TestShortNeedleEveryStart places the needle at every start offset of a
// 24-byte haystack filled with a byte that never matches, so each lane and
// each step boundary of the 2-, 3- and 4-byte loops is hit once.
func TestShortNeedleEveryStart(t *testing.T) {
	needles := []string{"xy", "xyz", "wxyz", "xx", "xxx", "xxxx"}

	for _, n := range needles {
		for pos := 0; pos+len(n) <= 24; pos++ {
			h := bytes.Repeat([]byte{'.'}, 24)
			copy(h[pos:], n)

			var got int
			switch len(n) {
			case 2:
				got = find2SWAR(h, n[0], n[1])
			case 3:
				got = find3SWAR(h, n[0], n[1], n[2])
			case 4:
				got = find4SWAR(h, []byte(n))
			}
			if got != pos {
				t.Errorf("find%dSWAR(%q) at %d = %d", len(n), n, pos, got)
			}
		}
	}
}

// TestShortNeedlePartialOverlap checks that a needle prefix ending a chunk
// and continuing into the next one is neither missed nor double-reported.
func TestShortNeedlePartialOverlap(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     int
	}{
		{"......xyxy", "xy", 6},
		{".......x" + "y.......", "xy", 7},
		{"aaaaaaab", "ab", 6},
		{"......xyz.", "xyz", 6},
		{".....xy" + "z.......", "xyz", 5},
		{"xxyxyxyz", "xyz", 5},
		{".......wxyz", "wxyz", 7},
		{"wxywxywxyz", "wxyz", 6},
		{"aaaaaaaaaaab", "aaab", 8},
	}

	for _, tt := range tests {
		h := []byte(tt.haystack)
		if got := FindSubstringScalar(h, PrefixNeedle([]byte(tt.needle))); got != tt.want {
			t.Errorf("FindSubstringScalar(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

func TestEqHelpers(t *testing.T) {
	if got := eqBytes(^uint64(0)); got != lo8 {
		t.Errorf("eqBytes(all ones) = %#x", got)
	}
	if got := eqPairs(0x00FF_FFFF_FF00_FFFF); got != 0x0000_0001_0000_0001 {
		t.Errorf("eqPairs = %#x", got)
	}
	if got := eqQuads(0xFFFF_FFFF_00FF_FFFF); got != 0x0000_0001_0000_0000 {
		t.Errorf("eqQuads = %#x", got)
	}
	if got := eqTriples(^uint64(0)); got != 0x0000_0100_0001_0000 {
		t.Errorf("eqTriples(all ones) = %#x", got)
	}
}

func TestFind4FirstTable(t *testing.T) {
	for m := 1; m < 16; m++ {
		want := 0
		for m>>want&1 == 0 {
			want++
		}
		if got := int(find4First[m]); got != want {
			t.Errorf("find4First[%04b] = %d, want %d", m, got, want)
		}
	}
}

func TestAlignPrefix(t *testing.T) {
	buf := make([]byte, 64)
	for i := 0; i < 16; i++ {
		n := alignPrefix(buf[i:], wordSize)
		if n < 0 || n >= wordSize {
			t.Fatalf("alignPrefix(buf[%d:]) = %d", i, n)
		}
		if n < len(buf[i:]) && (i+n-alignPrefix(buf, wordSize))%wordSize != 0 {
			t.Errorf("alignPrefix(buf[%d:]) = %d does not reach alignment", i, n)
		}
	}
	if got := alignPrefix(nil, wordSize); got != 0 {
		t.Errorf("alignPrefix(nil) = %d", got)
	}
	if got := alignPrefix(buf[1:3], 16); got > 2 {
		t.Errorf("alignPrefix is not capped by length: %d", got)
	}
}
