package utf

// UTF8ToUTF16Length returns the number of UTF-16 units src converts to,
// excluding the terminator.
func UTF8ToUTF16Length(src []byte, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf8Dec, utf16NativeEnc)
}

// UTF8ToUTF16LELength is UTF8ToUTF16Length; the target order does not change
// the unit count.
func UTF8ToUTF16LELength(src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF16Length(src, srcLen, flags)
}

// UTF8ToUTF16BELength is UTF8ToUTF16Length.
func UTF8ToUTF16BELength(src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF16Length(src, srcLen, flags)
}

// UTF8ToUTF16NELength is UTF8ToUTF16Length.
func UTF8ToUTF16NELength(src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF16Length(src, srcLen, flags)
}

// UTF8ToUTF16 converts UTF-8 to UTF-16 in host order.
func UTF8ToUTF16(dst []uint16, src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF16NE(dst, src, srcLen, flags)
}

// UTF8ToUTF16NE converts UTF-8 to UTF-16 in host order.
func UTF8ToUTF16NE(dst []uint16, src []byte, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF8ToUTF16LE(dst, src, srcLen, flags)
	}
	return UTF8ToUTF16BE(dst, src, srcLen, flags)
}

// UTF8ToUTF16LE converts UTF-8 to UTF-16 units stored little-endian.
func UTF8ToUTF16LE(dst []uint16, src []byte, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF8ToUTF16LELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf8Dec, utf16Enc(true))
}

// UTF8ToUTF16BE converts UTF-8 to UTF-16 units stored big-endian.
func UTF8ToUTF16BE(dst []uint16, src []byte, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF8ToUTF16BELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf8Dec, utf16Enc(false))
}

// UTF16ToUTF8Length returns the number of bytes src converts to. A leading
// BOM selects the source order; host order is assumed without one.
func UTF16ToUTF8Length(src []uint16, srcLen int, flags Flags) (Progress, error) {
	return measureSniffed(src, srcLen, flags, pickUTF16, utf16NativeDec, utf8Enc)
}

// UTF16LEToUTF8Length returns the number of bytes little-endian src converts to.
func UTF16LEToUTF8Length(src []uint16, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf16Dec(true), utf8Enc)
}

// UTF16BEToUTF8Length returns the number of bytes big-endian src converts to.
func UTF16BEToUTF8Length(src []uint16, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf16Dec(false), utf8Enc)
}

// UTF16NEToUTF8Length returns the number of bytes host-order src converts to.
func UTF16NEToUTF8Length(src []uint16, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF16LEToUTF8Length(src, srcLen, flags)
	}
	return UTF16BEToUTF8Length(src, srcLen, flags)
}

// UTF16ToUTF8 converts UTF-16 to UTF-8. A leading BOM selects the source
// order and is not copied; host order is assumed without one.
func UTF16ToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF16ToUTF8Length(src, srcLen, flags)
	}
	return convertSniffed(dst, src, srcLen, flags, pickUTF16, utf16NativeDec, utf8Enc)
}

// UTF16LEToUTF8 converts UTF-16 units stored little-endian to UTF-8.
func UTF16LEToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF16LEToUTF8Length(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf16Dec(true), utf8Enc)
}

// UTF16BEToUTF8 converts UTF-16 units stored big-endian to UTF-8.
func UTF16BEToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF16BEToUTF8Length(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf16Dec(false), utf8Enc)
}

// UTF16NEToUTF8 converts host-order UTF-16 to UTF-8.
func UTF16NEToUTF8(dst []byte, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF16LEToUTF8(dst, src, srcLen, flags)
	}
	return UTF16BEToUTF8(dst, src, srcLen, flags)
}
