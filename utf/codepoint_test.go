package utf

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"
)

func TestValidCodePoint(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{0, true},
		{'A', true},
		{0xD7FF, true},
		{0xD800, false},
		{0xDBFF, false},
		{0xDC00, false},
		{0xDFFF, false},
		{0xE000, true},
		{0xFFFE, true},
		{0x10FFFF, true},
		{0x110000, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := ValidCodePoint(tt.r); got != tt.want {
			t.Errorf("ValidCodePoint(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestUTF32ToUTF8Len(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{0x10FFFF, 4},
		{0xD800, -1},
		{0x110000, -1},
		{-5, -1},
	}
	for _, tt := range tests {
		if got := UTF32ToUTF8Len(tt.r); got != tt.want {
			t.Errorf("UTF32ToUTF8Len(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestEncodeUTF8_MatchesStdlib(t *testing.T) {
	runes := []rune{0, 'a', 0x7F, 0x80, 0xE9, 0x7FF, 0x800, 0x65E5, 0xFFFD, 0xFFFF, 0x10000, 0x1F600, 0x10FFFF}
	for _, r := range runes {
		var got, want [4]byte
		n := EncodeUTF8(got[:], r)
		m := utf8.EncodeRune(want[:], r)
		if n != m || got != want {
			t.Errorf("EncodeUTF8(%#x) = % x (%d), want % x (%d)", r, got[:n], n, want[:m], m)
		}
		if n != UTF32ToUTF8Len(r) {
			t.Errorf("UTF32ToUTF8Len(%#x) = %d, encoded %d bytes", r, UTF32ToUTF8Len(r), n)
		}
	}
}

func TestEncodeUTF8_NoRoom(t *testing.T) {
	tests := []struct {
		r   rune
		cap int
	}{
		{'a', 0},
		{0xE9, 1},
		{0x65E5, 2},
		{0x1F600, 3},
	}
	for _, tt := range tests {
		buf := make([]byte, tt.cap)
		if n := EncodeUTF8(buf, tt.r); n != 0 {
			t.Errorf("EncodeUTF8(%#x) into %d bytes = %d, want 0", tt.r, tt.cap, n)
		}
	}
}

func TestEncodeUTF8_InvalidWritesReplacement(t *testing.T) {
	var buf [4]byte
	n := EncodeUTF8(buf[:], 0xD800)
	if n != 3 || string(buf[:n]) != "\uFFFD" {
		t.Errorf("EncodeUTF8(0xD800) = % x", buf[:n])
	}
}

func TestUTF32ToUTF16Len(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{0xFFFF, 1},
		{0x10000, 2},
		{0x10FFFF, 2},
		{0xDC00, -1},
		{0x110000, -1},
	}
	for _, tt := range tests {
		if got := UTF32ToUTF16Len(tt.r); got != tt.want {
			t.Errorf("UTF32ToUTF16Len(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestSurrogatePairBoundary(t *testing.T) {
	var buf [2]uint16
	if n := EncodeUTF16(buf[:], 0x10000); n != 2 {
		t.Fatalf("EncodeUTF16(U+10000) wrote %d units", n)
	}
	if buf != [2]uint16{0xD800, 0xDC00} {
		t.Fatalf("EncodeUTF16(U+10000) = %#04x, want [0xd800 0xdc00]", buf)
	}
	if r := DecodeSurrogatePair(buf[0], buf[1]); r != 0x10000 {
		t.Fatalf("DecodeSurrogatePair = %#x, want 0x10000", r)
	}

	hi, lo := EncodeSurrogatePair(0x10FFFF)
	if hi != 0xDBFF || lo != 0xDFFF {
		t.Errorf("EncodeSurrogatePair(U+10FFFF) = %#x %#x", hi, lo)
	}
}

func TestEncodeUTF16_MatchesStdlib(t *testing.T) {
	for _, r := range []rune{'a', 0xE9, 0xFFFD, 0xFFFF, 0x10000, 0x1F600, 0x10FFFF} {
		var buf [2]uint16
		n := EncodeUTF16(buf[:], r)
		want := utf16.Encode([]rune{r})
		if !equal(buf[:n], want) {
			t.Errorf("EncodeUTF16(%#x) = %#04x, want %#04x", r, buf[:n], want)
		}
	}
}

func TestEncodeUTF16_NoRoom(t *testing.T) {
	if n := EncodeUTF16(nil, 'a'); n != 0 {
		t.Errorf("EncodeUTF16 into nil = %d", n)
	}
	one := make([]uint16, 1)
	if n := EncodeUTF16(one, 0x1F600); n != 0 {
		t.Errorf("EncodeUTF16 pair into 1 unit = %d", n)
	}
	if one[0] != 0 {
		t.Errorf("EncodeUTF16 wrote %#x on failure", one[0])
	}
}

func TestDecodeSurrogatePair_Invalid(t *testing.T) {
	tests := [][2]uint16{
		{0xDC00, 0xD800},
		{0xD800, 0x0041},
		{0x0041, 0xDC00},
	}
	for _, p := range tests {
		if r := DecodeSurrogatePair(p[0], p[1]); r != RuneError {
			t.Errorf("DecodeSurrogatePair(%#x, %#x) = %#x, want RuneError", p[0], p[1], r)
		}
	}
}
