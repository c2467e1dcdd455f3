package utf

import "encoding/binary"

// unit is the storage type of a code unit, or byte for units held in raw
// memory.
type unit interface {
	~uint8 | ~uint16 | ~uint32
}

// status classifies one decode step.
type status uint8

const (
	decodeOK      status = iota
	decodeInvalid        // malformed but complete; may be replaced
	decodeShort          // input ends inside a sequence
)

// decoder reads code points from elements of type S. width is the number of
// elements per code unit: 1 for typed slices, 2 or 4 for UTF-16 and UTF-32
// units held in bytes.
type decoder[S unit] struct {
	decode func(src []S) (r rune, size int, st status) // size in elements
	bom    func(src []S) int                           // elements taken by a leading BOM
	width  int
}

const (
	locb = 0b10000000
	hicb = 0b10111111

	// These names of these constants are chosen to give nice alignment in the
	// table below. The first nibble is an index into acceptRanges or F for
	// special one-byte cases. The second nibble is the sequence length or the
	// status for the special one-byte case.
	xx = 0xF1 // invalid: size 1
	as = 0xF0 // ASCII: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4
)

// first is information about the first byte in a UTF-8 sequence.
var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// acceptRange gives the range of valid values for the second byte in a UTF-8
// sequence.
type acceptRange struct {
	lo uint8 // lowest value for second byte.
	hi uint8 // highest value for second byte.
}

// acceptRanges has size 16 to avoid bounds checks in the code that uses it.
var acceptRanges = [16]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb}, // no overlong 3-byte forms
	2: {locb, 0x9F}, // no surrogates
	3: {0x90, hicb}, // no overlong 4-byte forms
	4: {locb, 0x8F}, // nothing above MaxCodePoint
}

// decodeUTF8 decodes one sequence. A malformed sequence consumes one byte, as
// utf8.DecodeRune does. The input is short only when every byte after the lead
// is an acceptable continuation.
func decodeUTF8(p []byte) (rune, int, status) {
	p0 := p[0]
	x := first[p0]
	if x >= as {
		if x == xx {
			return RuneError, 1, decodeInvalid
		}
		return rune(p0), 1, decodeOK
	}
	sz := int(x & 7)
	accept := acceptRanges[x>>4]
	n := len(p)
	if n < 2 {
		return RuneError, 1, decodeShort
	}
	b1 := p[1]
	if b1 < accept.lo || accept.hi < b1 {
		return RuneError, 1, decodeInvalid
	}
	if sz <= 2 {
		return rune(p0&mask2)<<6 | rune(b1&maskx), 2, decodeOK
	}
	if n < 3 {
		return RuneError, 2, decodeShort
	}
	b2 := p[2]
	if b2 < locb || hicb < b2 {
		return RuneError, 1, decodeInvalid
	}
	if sz <= 3 {
		return rune(p0&mask3)<<12 | rune(b1&maskx)<<6 | rune(b2&maskx), 3, decodeOK
	}
	if n < 4 {
		return RuneError, 3, decodeShort
	}
	b3 := p[3]
	if b3 < locb || hicb < b3 {
		return RuneError, 1, decodeInvalid
	}
	return rune(p0&mask4)<<18 | rune(b1&maskx)<<12 | rune(b2&maskx)<<6 | rune(b3&maskx), 4, decodeOK
}

func bomUTF8Units(p []byte) int {
	if HasUTF8BOM(p) {
		return 3
	}
	return 0
}

// decode16 decodes the unit u1, pairing it with u2 when more is set.
// size is in code units.
func decode16(u1 uint16, more bool, u2 uint16) (rune, int, status) {
	switch {
	case u1 < surr1 || surr3 <= u1:
		return rune(u1), 1, decodeOK
	case surr2 <= u1:
		// lone low surrogate
		return RuneError, 1, decodeInvalid
	case !more:
		return RuneError, 1, decodeShort
	case u2 < surr2 || surr3 <= u2:
		// high surrogate not followed by a low one
		return RuneError, 1, decodeInvalid
	}
	return DecodeSurrogatePair(u1, u2), 2, decodeOK
}

func decode32(u uint32) (rune, int, status) {
	if u > MaxCodePoint || (surr1 <= u && u < surr3) {
		return RuneError, 1, decodeInvalid
	}
	return rune(u), 1, decodeOK
}

func decodeUTF16Native(p []uint16) (rune, int, status) {
	if len(p) > 1 {
		return decode16(p[0], true, p[1])
	}
	return decode16(p[0], false, 0)
}

func decodeUTF16Swapped(p []uint16) (rune, int, status) {
	if len(p) > 1 {
		return decode16(Swap16(p[0]), true, Swap16(p[1]))
	}
	return decode16(Swap16(p[0]), false, 0)
}

func bomUTF16Native(p []uint16) int {
	if p[0] == BOM {
		return 1
	}
	return 0
}

func bomUTF16Swapped(p []uint16) int {
	if Swap16(p[0]) == BOM {
		return 1
	}
	return 0
}

func decodeUTF32Native(p []uint32) (rune, int, status) {
	return decode32(p[0])
}

func decodeUTF32Swapped(p []uint32) (rune, int, status) {
	return decode32(Swap32(p[0]))
}

func bomUTF32Native(p []uint32) int {
	if p[0] == BOM {
		return 1
	}
	return 0
}

func bomUTF32Swapped(p []uint32) int {
	if Swap32(p[0]) == BOM {
		return 1
	}
	return 0
}

func decodeUTF16LEBytes(p []byte) (rune, int, status) {
	var u2 uint16
	more := len(p) >= 4
	if more {
		u2 = binary.LittleEndian.Uint16(p[2:])
	}
	r, n, st := decode16(binary.LittleEndian.Uint16(p), more, u2)
	return r, 2 * n, st
}

func decodeUTF16BEBytes(p []byte) (rune, int, status) {
	var u2 uint16
	more := len(p) >= 4
	if more {
		u2 = binary.BigEndian.Uint16(p[2:])
	}
	r, n, st := decode16(binary.BigEndian.Uint16(p), more, u2)
	return r, 2 * n, st
}

func bomUTF16LEBytes(p []byte) int {
	if [2]byte(p[:2]) == bomUTF16LE {
		return 2
	}
	return 0
}

func bomUTF16BEBytes(p []byte) int {
	if [2]byte(p[:2]) == bomUTF16BE {
		return 2
	}
	return 0
}

func decodeUTF32LEBytes(p []byte) (rune, int, status) {
	r, _, st := decode32(binary.LittleEndian.Uint32(p))
	return r, 4, st
}

func decodeUTF32BEBytes(p []byte) (rune, int, status) {
	r, _, st := decode32(binary.BigEndian.Uint32(p))
	return r, 4, st
}

func bomUTF32LEBytes(p []byte) int {
	if [4]byte(p[:4]) == bomUTF32LE {
		return 4
	}
	return 0
}

func bomUTF32BEBytes(p []byte) int {
	if [4]byte(p[:4]) == bomUTF32BE {
		return 4
	}
	return 0
}

var (
	utf8Dec         = decoder[byte]{decode: decodeUTF8, bom: bomUTF8Units, width: 1}
	utf16NativeDec  = decoder[uint16]{decode: decodeUTF16Native, bom: bomUTF16Native, width: 1}
	utf16SwappedDec = decoder[uint16]{decode: decodeUTF16Swapped, bom: bomUTF16Swapped, width: 1}
	utf32NativeDec  = decoder[uint32]{decode: decodeUTF32Native, bom: bomUTF32Native, width: 1}
	utf32SwappedDec = decoder[uint32]{decode: decodeUTF32Swapped, bom: bomUTF32Swapped, width: 1}

	utf16LEBytesDec = decoder[byte]{decode: decodeUTF16LEBytes, bom: bomUTF16LEBytes, width: 2}
	utf16BEBytesDec = decoder[byte]{decode: decodeUTF16BEBytes, bom: bomUTF16BEBytes, width: 2}
	utf32LEBytesDec = decoder[byte]{decode: decodeUTF32LEBytes, bom: bomUTF32LEBytes, width: 4}
	utf32BEBytesDec = decoder[byte]{decode: decodeUTF32BEBytes, bom: bomUTF32BEBytes, width: 4}
)

// utf16Dec returns the decoder for UTF-16 units stored little-endian (le) or
// big-endian.
func utf16Dec(le bool) decoder[uint16] {
	if orderFor(le) {
		return utf16SwappedDec
	}
	return utf16NativeDec
}

func utf32Dec(le bool) decoder[uint32] {
	if orderFor(le) {
		return utf32SwappedDec
	}
	return utf32NativeDec
}

// pickUTF16 selects the decoder implied by a leading BOM unit.
func pickUTF16(p []uint16) (decoder[uint16], bool) {
	switch p[0] {
	case BOM:
		return utf16NativeDec, true
	case Swap16(BOM):
		return utf16SwappedDec, true
	}
	return utf16NativeDec, false
}

func pickUTF32(p []uint32) (decoder[uint32], bool) {
	switch p[0] {
	case BOM:
		return utf32NativeDec, true
	case Swap32(BOM):
		return utf32SwappedDec, true
	}
	return utf32NativeDec, false
}

func pickUTF16Bytes(p []byte) (decoder[byte], bool) {
	switch [2]byte(p[:2]) {
	case bomUTF16LE:
		return utf16LEBytesDec, true
	case bomUTF16BE:
		return utf16BEBytesDec, true
	}
	return hostBytesDec(FormUTF16), false
}

func pickUTF32Bytes(p []byte) (decoder[byte], bool) {
	switch [4]byte(p[:4]) {
	case bomUTF32LE:
		return utf32LEBytesDec, true
	case bomUTF32BE:
		return utf32BEBytesDec, true
	}
	return hostBytesDec(FormUTF32), false
}
