package utf

import "encoding/binary"

// encoder writes code points as elements of type D. swap, when set, is run
// over the produced output to move it from host order to the target order.
type encoder[D unit] struct {
	size   func(r rune) int          // elements needed for r
	encode func(dst []D, r rune) int // elements written, 0 when dst is short
	swap   func(dst []D)
	width  int
}

func utf32Len(rune) int { return 1 }

func encodeUTF32(dst []uint32, r rune) int {
	if len(dst) < 1 {
		return 0
	}
	dst[0] = uint32(r)
	return 1
}

func utf16BytesLen(r rune) int { return 2 * UTF32ToUTF16Len(r) }

func utf32BytesLen(rune) int { return 4 }

func encodeUTF16LEBytes(dst []byte, r rune) int {
	if r < surrSelf {
		if len(dst) < 2 {
			return 0
		}
		binary.LittleEndian.PutUint16(dst, uint16(r))
		return 2
	}
	if len(dst) < 4 {
		return 0
	}
	hi, lo := EncodeSurrogatePair(r)
	binary.LittleEndian.PutUint16(dst, hi)
	binary.LittleEndian.PutUint16(dst[2:], lo)
	return 4
}

func encodeUTF16BEBytes(dst []byte, r rune) int {
	if r < surrSelf {
		if len(dst) < 2 {
			return 0
		}
		binary.BigEndian.PutUint16(dst, uint16(r))
		return 2
	}
	if len(dst) < 4 {
		return 0
	}
	hi, lo := EncodeSurrogatePair(r)
	binary.BigEndian.PutUint16(dst, hi)
	binary.BigEndian.PutUint16(dst[2:], lo)
	return 4
}

func encodeUTF32LEBytes(dst []byte, r rune) int {
	if len(dst) < 4 {
		return 0
	}
	binary.LittleEndian.PutUint32(dst, uint32(r))
	return 4
}

func encodeUTF32BEBytes(dst []byte, r rune) int {
	if len(dst) < 4 {
		return 0
	}
	binary.BigEndian.PutUint32(dst, uint32(r))
	return 4
}

var (
	utf8Enc         = encoder[byte]{size: UTF32ToUTF8Len, encode: EncodeUTF8, width: 1}
	utf16NativeEnc  = encoder[uint16]{size: UTF32ToUTF16Len, encode: EncodeUTF16, width: 1}
	utf16SwappedEnc = encoder[uint16]{size: UTF32ToUTF16Len, encode: EncodeUTF16, swap: swapAll16, width: 1}
	utf32NativeEnc  = encoder[uint32]{size: utf32Len, encode: encodeUTF32, width: 1}
	utf32SwappedEnc = encoder[uint32]{size: utf32Len, encode: encodeUTF32, swap: swapAll32, width: 1}

	utf16LEBytesEnc = encoder[byte]{size: utf16BytesLen, encode: encodeUTF16LEBytes, width: 2}
	utf16BEBytesEnc = encoder[byte]{size: utf16BytesLen, encode: encodeUTF16BEBytes, width: 2}
	utf32LEBytesEnc = encoder[byte]{size: utf32BytesLen, encode: encodeUTF32LEBytes, width: 4}
	utf32BEBytesEnc = encoder[byte]{size: utf32BytesLen, encode: encodeUTF32BEBytes, width: 4}
)

// utf16Enc returns the encoder producing UTF-16 units stored little-endian
// (le) or big-endian.
func utf16Enc(le bool) encoder[uint16] {
	if orderFor(le) {
		return utf16SwappedEnc
	}
	return utf16NativeEnc
}

func utf32Enc(le bool) encoder[uint32] {
	if orderFor(le) {
		return utf32SwappedEnc
	}
	return utf32NativeEnc
}
