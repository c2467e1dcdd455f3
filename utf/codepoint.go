package utf

// 0xd800-0xdc00 encodes the high 10 bits of a pair.
// 0xdc00-0xe000 encodes the low 10 bits of a pair.
// the value is those 20 bits plus 0x10000.
const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// ValidCodePoint reports whether r is a Unicode scalar value: at most
// MaxCodePoint and outside the surrogate range.
func ValidCodePoint(r rune) bool {
	switch {
	case 0 <= r && r < surr1:
		return true
	case surr3 <= r && r <= MaxCodePoint:
		return true
	}
	return false
}

// UTF32ToUTF8Len returns the number of bytes needed to encode r in UTF-8, or
// -1 if r is not a valid code point.
func UTF32ToUTF8Len(r rune) int {
	switch {
	case r < 0:
		return -1
	case r <= rune1Max:
		return 1
	case r <= rune2Max:
		return 2
	case surr1 <= r && r < surr3:
		return -1
	case r <= rune3Max:
		return 3
	case r <= MaxCodePoint:
		return 4
	}
	return -1
}

// EncodeUTF8 writes the UTF-8 encoding of r into dst and returns the number of
// bytes written. It returns 0 when dst is too short; a valid code point never
// encodes to zero bytes. Invalid code points are written as RuneError.
func EncodeUTF8(dst []byte, r rune) int {
	if !ValidCodePoint(r) {
		r = RuneError
	}
	switch i := uint32(r); {
	case i <= rune1Max:
		if len(dst) < 1 {
			return 0
		}
		dst[0] = byte(r)
		return 1
	case i <= rune2Max:
		if len(dst) < 2 {
			return 0
		}
		_ = dst[1] // eliminate bounds checks
		dst[0] = t2 | byte(r>>6)
		dst[1] = tx | byte(r)&maskx
		return 2
	case i <= rune3Max:
		if len(dst) < 3 {
			return 0
		}
		_ = dst[2]
		dst[0] = t3 | byte(r>>12)
		dst[1] = tx | byte(r>>6)&maskx
		dst[2] = tx | byte(r)&maskx
		return 3
	default:
		if len(dst) < 4 {
			return 0
		}
		_ = dst[3]
		dst[0] = t4 | byte(r>>18)
		dst[1] = tx | byte(r>>12)&maskx
		dst[2] = tx | byte(r>>6)&maskx
		dst[3] = tx | byte(r)&maskx
		return 4
	}
}

// UTF32ToUTF16Len returns 1 for code points in the basic multilingual plane
// and 2 for those that need a surrogate pair. It returns -1 if r is not a
// valid code point.
func UTF32ToUTF16Len(r rune) int {
	switch {
	case !ValidCodePoint(r):
		return -1
	case r < surrSelf:
		return 1
	}
	return 2
}

// EncodeUTF16 writes r into dst as one unit or as a surrogate pair (RFC 2781
// section 2.1) and returns the number of units written, or 0 when dst is too
// short. Invalid code points are written as RuneError.
func EncodeUTF16(dst []uint16, r rune) int {
	if !ValidCodePoint(r) {
		r = RuneError
	}
	if r < surrSelf {
		if len(dst) < 1 {
			return 0
		}
		dst[0] = uint16(r)
		return 1
	}
	if len(dst) < 2 {
		return 0
	}
	hi, lo := EncodeSurrogatePair(r)
	dst[0], dst[1] = hi, lo
	return 2
}

// EncodeSurrogatePair splits a supplementary code point into its high and low
// surrogates. r must be in [0x10000, MaxCodePoint].
func EncodeSurrogatePair(r rune) (hi, lo uint16) {
	r -= surrSelf
	return uint16(surr1 | (r>>10)&0x3ff), uint16(surr2 | r&0x3ff)
}

// DecodeSurrogatePair joins a high and a low surrogate into a code point.
// It returns RuneError if the pair is not a valid surrogate pair.
func DecodeSurrogatePair(hi, lo uint16) rune {
	if surr1 <= hi && hi < surr2 && surr2 <= lo && lo < surr3 {
		return (rune(hi)&0x3ff)<<10 | rune(lo)&0x3ff + surrSelf
	}
	return RuneError
}
