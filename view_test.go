package strzl

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewFind(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 0},
		{"empty_both", "", "", 0},
		{"empty_haystack", "", "x", NPos},
		{"one_byte", "hello", "l", 2},
		{"long", "GET /index.html HTTP/1.1", "HTTP/1.1", 16},
		{"missing", "hello world", "worlds", NPos},
		{"needle_too_long", "hi", "hello", NPos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ViewString(tt.haystack)
			assert.Equal(t, tt.want, v.Find([]byte(tt.needle)))
			assert.Equal(t, tt.want != NPos, v.Contains([]byte(tt.needle)))
		})
	}
}

func TestViewFindFrom(t *testing.T) {
	v := ViewString("abcabcabc")
	assert.Equal(t, 0, v.FindFrom([]byte("abc"), 0))
	assert.Equal(t, 3, v.FindFrom([]byte("abc"), 1))
	assert.Equal(t, 6, v.FindFrom([]byte("abc"), 6))
	assert.Equal(t, NPos, v.FindFrom([]byte("abc"), 7))
	assert.Equal(t, 9, v.FindFrom(nil, 9))
	assert.Equal(t, NPos, v.FindFrom([]byte("a"), 10))
}

func TestViewFindByteFrom(t *testing.T) {
	v := ViewString("a,b,c")
	assert.Equal(t, 1, v.FindByteFrom(',', 0))
	assert.Equal(t, 1, v.FindByteFrom(',', 1))
	assert.Equal(t, 3, v.FindByteFrom(',', 2))
	assert.Equal(t, NPos, v.FindByteFrom(',', 4))
	assert.Equal(t, NPos, v.FindByteFrom(',', 5))
	assert.Equal(t, NPos, v.FindByteFrom(',', 6))
}

func TestViewRFind(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
	}{
		{"empty_needle", "hello", ""},
		{"empty_both", "", ""},
		{"empty_haystack", "", "x"},
		{"one_byte", "hello", "l"},
		{"repeated", "abcabcabc", "abc"},
		{"overlapping", "aaaa", "aa"},
		{"at_start", "GET / GET", "GET /"},
		{"missing", "hello world", "worlds"},
		{"needle_too_long", "hi", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ViewString(tt.haystack)
			assert.Equal(t, bytes.LastIndex([]byte(tt.haystack), []byte(tt.needle)), v.RFind([]byte(tt.needle)))
			for _, c := range []byte("lahxG") {
				assert.Equal(t, bytes.LastIndexByte([]byte(tt.haystack), c), v.RFindByte(c))
			}
		})
	}
}

func TestViewRFindFrom(t *testing.T) {
	v := ViewString("abcabcabc")
	assert.Equal(t, 6, v.RFindFrom([]byte("abc"), 9))
	assert.Equal(t, 6, v.RFindFrom([]byte("abc"), 6))
	assert.Equal(t, 3, v.RFindFrom([]byte("abc"), 5))
	assert.Equal(t, 0, v.RFindFrom([]byte("abc"), 2))
	assert.Equal(t, NPos, v.RFindFrom([]byte("bc"), 0))
	assert.Equal(t, NPos, v.RFindFrom([]byte("abc"), -1))
	assert.Equal(t, 4, v.RFindFrom(nil, 4))
}

func TestViewBytes(t *testing.T) {
	v := ViewString("hello")
	assert.Equal(t, 5, v.Len())
	assert.False(t, v.Empty())
	assert.Equal(t, byte('h'), v.Front())
	assert.Equal(t, byte('o'), v.Back())
	assert.Equal(t, byte('l'), v.At(2))
	assert.Equal(t, "hello", v.String())

	assert.Equal(t, 2, v.FindByte('l'))
	assert.Equal(t, NPos, v.FindByte('z'))
	assert.True(t, v.ContainsByte('o'))
	assert.Equal(t, 2, v.CountByte('l'))

	var zero View
	assert.True(t, zero.Empty())
	assert.Equal(t, NPos, zero.FindByte(0))
}

func TestViewRemovePrefixSuffix(t *testing.T) {
	v := ViewString("[payload]")
	v.RemovePrefix(1)
	v.RemoveSuffix(1)
	assert.Equal(t, "payload", v.String())

	v.RemovePrefix(v.Len())
	assert.True(t, v.Empty())

	assert.Panics(t, func() { v.RemovePrefix(1) })
	assert.Panics(t, func() { v.RemoveSuffix(1) })
}

func TestViewSubstr(t *testing.T) {
	v := ViewString("hello world")
	assert.Equal(t, "world", v.Substr(6, 100).String())
	assert.Equal(t, "lo w", v.Substr(3, 4).String())
	assert.Equal(t, "", v.Substr(11, 1).String())
	assert.Panics(t, func() { v.Substr(12, 0) })
}

func TestViewCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "abc", 0},
		{"abc", "abd", -1},
		{"abd", "abc", 1},
		{"ab", "abc", -1},
		{"", "", 0},
		{"\xff", "\x00", 1},
	}

	for _, tt := range tests {
		got := ViewString(tt.a).Compare(ViewString(tt.b))
		assert.Equal(t, tt.want, got, "Compare(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want == 0, ViewString(tt.a).Equal(ViewString(tt.b)))
	}
}

func TestViewPrefixSuffix(t *testing.T) {
	v := ViewString("prefix-body-suffix")
	assert.True(t, v.HasPrefix([]byte("prefix")))
	assert.True(t, v.HasSuffix([]byte("-suffix")))
	assert.True(t, v.HasPrefix(nil))
	assert.False(t, v.HasPrefix([]byte("body")))
	assert.False(t, ViewString("ab").HasSuffix([]byte("xab")))
}

func TestViewSets(t *testing.T) {
	v := ViewString("  key = value  ")
	assert.Equal(t, 2, v.FindFirstNotOf([]byte(" ")))
	assert.Equal(t, 6, v.FindFirstOf([]byte("=")))
	assert.Equal(t, 12, v.FindLastNotOf([]byte(" ")))
	assert.Equal(t, 14, v.FindLastOf([]byte(" ")))
	assert.Equal(t, NPos, v.FindFirstOf([]byte("#")))
	assert.Equal(t, NPos, ViewString("   ").FindFirstNotOf([]byte(" ")))
	assert.Equal(t, NPos, ViewString("   ").FindLastNotOf([]byte(" ")))

	assert.Equal(t, "key = value", v.Trim([]byte(" ")).String())
	assert.Equal(t, "key = value  ", v.TrimLeft([]byte(" ")).String())
	assert.Equal(t, "  key = value", v.TrimRight([]byte(" ")).String())
	assert.True(t, ViewString("   ").Trim([]byte(" ")).Empty())

	set := ViewString("aeiou").CharacterSet()
	assert.Equal(t, 5, set.Len())
	assert.Equal(t, 3, v.FindFirstOfSet(&set))
}

func TestViewHash(t *testing.T) {
	buf := []byte("xx hello xx")
	a := ViewString("hello")
	b := NewView(buf).Substr(3, 5)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), ViewString("hellp").Hash())
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     []int
	}{
		{"none", "hello", "z", nil},
		{"single", "hello", "ell", []int{1}},
		{"repeated", "abcabc", "bc", []int{1, 4}},
		{"overlapping", "aaaa", "aa", []int{0, 1, 2}},
		{"long_overlapping", "abababababa", "ababa", []int{0, 2, 4, 6}},
		{"empty_needle", "abc", "", []int{0, 1, 2}},
		{"empty_haystack", "", "a", nil},
		{"needle_too_long", "ab", "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Matches([]byte(tt.haystack), []byte(tt.needle)))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), Count([]byte(tt.haystack), []byte(tt.needle)))
		})
	}
}

func TestMatchesEarlyStop(t *testing.T) {
	var got []int
	for off := range ViewString("x.x.x.x").Matches([]byte("x")) {
		got = append(got, off)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 2}, got)
}

func TestRMatches(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     []int
	}{
		{"none", "hello", "z", nil},
		{"single", "hello", "ell", []int{1}},
		{"repeated", "abcabc", "bc", []int{4, 1}},
		{"overlapping", "aaaa", "aa", []int{2, 1, 0}},
		{"long_overlapping", "abababababa", "ababa", []int{6, 4, 2, 0}},
		{"empty_needle", "abc", "", []int{2, 1, 0}},
		{"empty_haystack", "", "a", nil},
		{"needle_too_long", "ab", "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, n := []byte(tt.haystack), []byte(tt.needle)
			got := slices.Collect(RMatches(h, n))
			assert.Equal(t, tt.want, got)

			forward := slices.Collect(Matches(h, n))
			slices.Reverse(forward)
			assert.Equal(t, forward, got)

			if len(got) > 0 {
				assert.Equal(t, bytes.LastIndex(h, n), got[0])
			}
		})
	}

	var got []int
	for off := range ViewString("x.x.x.x").RMatches([]byte("x")) {
		got = append(got, off)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{6, 4}, got)
}

func TestCharMatches(t *testing.T) {
	set := ViewString(",;").CharacterSet()
	got := slices.Collect(CharMatches([]byte("a,b;;c,"), set))
	assert.Equal(t, []int{1, 3, 4, 6}, got)

	empty := ViewString("").CharacterSet()
	assert.Empty(t, slices.Collect(CharMatches([]byte("abc"), empty)))
}
