package simd

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemmemBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 0},
		{"empty_haystack", "", "x", -1},
		{"both_empty", "", "", 0},
		{"single_byte", "hello", "e", 1},
		{"at_start", "ababacaba", "abab", 0},
		{"at_end", "ababacaba", "caba", 5},
		{"middle", "ababacaba", "aca", 4},
		{"not_found", "ababacaba", "abc", -1},
		{"needle_too_long", "ab", "aba", -1},
		{"exact", "abacaba", "abacaba", 0},
		{"overlapping", "aaaa", "aa", 0},
		{"repeated_prefix", "aaaaabaaaa", "ab", 4},
		{"rare_byte_near_end", "zzzzzzzzzQzzzQx", "Qx", 13},
		{"rare_byte_at_start", "xxQabQab", "Qab", 2},
		{"binary", "\x00\x01\x02\x03", "\x02\x03", 2},
	}

	withLoop(t, func(t *testing.T) {
		for _, tt := range tests {
			got := Memmem([]byte(tt.haystack), []byte(tt.needle))
			if got != tt.want {
				t.Errorf("%s: Memmem(%q, %q) = %d, want %d", tt.name, tt.haystack, tt.needle, got, tt.want)
			}
			if std := strings.Index(tt.haystack, tt.needle); got != std {
				t.Errorf("%s: Memmem != strings.Index: %d vs %d", tt.name, got, std)
			}
		}
	})
}

func TestMemmemLarge(t *testing.T) {
	haystack := bytes.Repeat([]byte("abacabad"), 4096)
	needle := []byte("abacabae")
	if got := Memmem(haystack, needle); got != -1 {
		t.Errorf("Memmem not-found = %d", got)
	}
	copy(haystack[len(haystack)-8:], needle)
	if got, want := Memmem(haystack, needle), len(haystack)-8; got != want {
		t.Errorf("Memmem = %d, want %d", got, want)
	}
}

func BenchmarkMemmem(b *testing.B) {
	haystack := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 1000)
	needle := []byte("lazy cat")
	b.SetBytes(int64(len(haystack)))
	for i := 0; i < b.N; i++ {
		_ = Memmem(haystack, needle)
	}
}

func FuzzMemmem(f *testing.F) {
	f.Add([]byte("ababacaba"), []byte("aca"))
	f.Add([]byte("aaaa"), []byte("aaaaa"))
	f.Add([]byte("zQzQzQ"), []byte("Qz"))

	f.Fuzz(func(t *testing.T, haystack, needle []byte) {
		if got, want := Memmem(haystack, needle), bytes.Index(haystack, needle); got != want {
			t.Errorf("Memmem(%q, %q) = %d, want %d", haystack, needle, got, want)
		}
	})
}
