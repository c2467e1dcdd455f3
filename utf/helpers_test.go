package utf

import (
	"encoding/binary"
	"unicode/utf16"
)

// stored16 encodes s as UTF-16 units laid out little-endian (le) or
// big-endian in memory.
func stored16(s string, le bool) []uint16 {
	u := utf16.Encode([]rune(s))
	if orderFor(le) {
		swapAll16(u)
	}
	return u
}

func stored32(s string, le bool) []uint32 {
	rs := []rune(s)
	u := make([]uint32, len(rs))
	for i, r := range rs {
		u[i] = uint32(r)
	}
	if orderFor(le) {
		swapAll32(u)
	}
	return u
}

// raw16 stores logical unit values in the given order. The result is never
// nil, so an empty unit list is an empty input rather than a null one.
func raw16(le bool, units ...uint16) []uint16 {
	out := make([]uint16, len(units))
	copy(out, units)
	if orderFor(le) {
		swapAll16(out)
	}
	return out
}

func raw32(le bool, units ...uint32) []uint32 {
	out := make([]uint32, len(units))
	copy(out, units)
	if orderFor(le) {
		swapAll32(out)
	}
	return out
}

// memory16 returns the bytes p occupies in host memory.
func memory16(p []uint16) []byte {
	b := make([]byte, 2*len(p))
	for i, u := range p {
		binary.NativeEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func memory32(p []uint32) []byte {
	b := make([]byte, 4*len(p))
	for i, u := range p {
		binary.NativeEndian.PutUint32(b[4*i:], u)
	}
	return b
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var roundTripCorpus = []string{
	"A",
	"hello, world",
	"héllo wörld",
	"日本語のテキスト",
	"😀🎉🚀",
	"mixed: a é 日 😀 z",
	"\uFFFF\uE000\uD7FF",
	"\U00010000\U0010FFFF",
	"noncharacter \uFFFE inside",
	"zero width\u200Bjoiner\u200D",
	"bom in the middle \uFEFF is data",
	"embedded\x00zero",
}
