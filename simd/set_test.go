package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU8Set(t *testing.T) {
	var s U8Set
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains('a'))

	s.Add('a')
	s.Add(0)
	s.Add(255)
	s.Add('a')
	assert.Equal(t, 3, s.Len())
	for _, c := range []byte{'a', 0, 255} {
		assert.True(t, s.Contains(c), "missing %#x", c)
	}
	assert.False(t, s.Contains('b'))

	s.Invert()
	assert.Equal(t, 253, s.Len())
	assert.False(t, s.Contains('a'))
	assert.True(t, s.Contains('b'))

	s.Invert()
	assert.Equal(t, NewU8Set([]byte{'a', 0, 255}), s)
}

func TestFindFromSet(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		set      string
		want     int
	}{
		{"empty_haystack", "", "abc", 0},
		{"empty_set", "hello", "", 5},
		{"single_member", "hello", "l", 2},
		{"first_of_many", "hello world", "ow", 4},
		{"none", "hello", "xyz", 5},
		{"whitespace", "key = value", " \t=", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewU8Set([]byte(tt.set))
			assert.Equal(t, tt.want, FindFromSet([]byte(tt.haystack), &s))
		})
	}
}

func TestFindNotFromSet(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		set      string
		want     int
	}{
		{"empty_haystack", "", " ", 0},
		{"leading_spaces", "   x", " ", 3},
		{"all_members", "aaaa", "a", 4},
		{"empty_set", "abc", "", 0},
		{"digits", "12345abc", "0123456789", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewU8Set([]byte(tt.set))
			assert.Equal(t, tt.want, FindNotFromSet([]byte(tt.haystack), &s))
		})
	}
}

func TestFindFromSetInverted(t *testing.T) {
	h := []byte("   \tpayload")
	s := NewU8Set([]byte(" \t"))
	s.Invert()
	assert.Equal(t, 4, FindFromSet(h, &s))

	s.Invert()
	assert.Equal(t, 0, FindFromSet(h, &s))
	assert.Equal(t, 4, FindNotFromSet(h, &s))
}
