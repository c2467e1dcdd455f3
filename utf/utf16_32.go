package utf

// UTF16ToUTF32Length returns the number of UTF-32 units src converts to. A
// leading BOM selects the source order; host order is assumed without one.
func UTF16ToUTF32Length(src []uint16, srcLen int, flags Flags) (Progress, error) {
	return measureSniffed(src, srcLen, flags, pickUTF16, utf16NativeDec, utf32NativeEnc)
}

// UTF16LEToUTF32LELength returns the number of UTF-32 units little-endian src
// converts to.
func UTF16LEToUTF32LELength(src []uint16, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf16Dec(true), utf32NativeEnc)
}

// UTF16BEToUTF32BELength returns the number of UTF-32 units big-endian src
// converts to.
func UTF16BEToUTF32BELength(src []uint16, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf16Dec(false), utf32NativeEnc)
}

// UTF16NEToUTF32NELength returns the number of UTF-32 units host-order src
// converts to.
func UTF16NEToUTF32NELength(src []uint16, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF16LEToUTF32LELength(src, srcLen, flags)
	}
	return UTF16BEToUTF32BELength(src, srcLen, flags)
}

// UTF16ToUTF32 converts UTF-16 to host-order UTF-32. A leading BOM selects the
// source order; host order is assumed without one.
func UTF16ToUTF32(dst []uint32, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF16ToUTF32Length(src, srcLen, flags)
	}
	return convertSniffed(dst, src, srcLen, flags, pickUTF16, utf16NativeDec, utf32NativeEnc)
}

// UTF16LEToUTF32LE converts little-endian UTF-16 to little-endian UTF-32.
func UTF16LEToUTF32LE(dst []uint32, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF16LEToUTF32LELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf16Dec(true), utf32Enc(true))
}

// UTF16BEToUTF32BE converts big-endian UTF-16 to big-endian UTF-32.
func UTF16BEToUTF32BE(dst []uint32, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF16BEToUTF32BELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf16Dec(false), utf32Enc(false))
}

// UTF16NEToUTF32NE converts host-order UTF-16 to host-order UTF-32.
func UTF16NEToUTF32NE(dst []uint32, src []uint16, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF16LEToUTF32LE(dst, src, srcLen, flags)
	}
	return UTF16BEToUTF32BE(dst, src, srcLen, flags)
}

// UTF32ToUTF16Length returns the number of UTF-16 units src converts to. A
// leading BOM selects the source order; host order is assumed without one.
func UTF32ToUTF16Length(src []uint32, srcLen int, flags Flags) (Progress, error) {
	return measureSniffed(src, srcLen, flags, pickUTF32, utf32NativeDec, utf16NativeEnc)
}

// UTF32LEToUTF16LELength returns the number of UTF-16 units little-endian src
// converts to.
func UTF32LEToUTF16LELength(src []uint32, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf32Dec(true), utf16NativeEnc)
}

// UTF32BEToUTF16BELength returns the number of UTF-16 units big-endian src
// converts to.
func UTF32BEToUTF16BELength(src []uint32, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf32Dec(false), utf16NativeEnc)
}

// UTF32NEToUTF16NELength returns the number of UTF-16 units host-order src
// converts to.
func UTF32NEToUTF16NELength(src []uint32, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF32LEToUTF16LELength(src, srcLen, flags)
	}
	return UTF32BEToUTF16BELength(src, srcLen, flags)
}

// UTF32ToUTF16 converts UTF-32 to host-order UTF-16. A leading BOM selects the
// source order; host order is assumed without one.
func UTF32ToUTF16(dst []uint16, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF32ToUTF16Length(src, srcLen, flags)
	}
	return convertSniffed(dst, src, srcLen, flags, pickUTF32, utf32NativeDec, utf16NativeEnc)
}

// UTF32LEToUTF16LE converts little-endian UTF-32 to little-endian UTF-16.
func UTF32LEToUTF16LE(dst []uint16, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF32LEToUTF16LELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf32Dec(true), utf16Enc(true))
}

// UTF32BEToUTF16BE converts big-endian UTF-32 to big-endian UTF-16.
func UTF32BEToUTF16BE(dst []uint16, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF32BEToUTF16BELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf32Dec(false), utf16Enc(false))
}

// UTF32NEToUTF16NE converts host-order UTF-32 to host-order UTF-16.
func UTF32NEToUTF16NE(dst []uint16, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF32LEToUTF16LE(dst, src, srcLen, flags)
	}
	return UTF32BEToUTF16BE(dst, src, srcLen, flags)
}
