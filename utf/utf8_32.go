package utf

// UTF8ToUTF32Length returns the number of UTF-32 units src converts to.
func UTF8ToUTF32Length(src []byte, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf8Dec, utf32NativeEnc)
}

// UTF8ToUTF32LELength is UTF8ToUTF32Length.
func UTF8ToUTF32LELength(src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF32Length(src, srcLen, flags)
}

// UTF8ToUTF32BELength is UTF8ToUTF32Length.
func UTF8ToUTF32BELength(src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF32Length(src, srcLen, flags)
}

// UTF8ToUTF32NELength is UTF8ToUTF32Length.
func UTF8ToUTF32NELength(src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF32Length(src, srcLen, flags)
}

// UTF8ToUTF32 converts UTF-8 to UTF-32 in host order.
func UTF8ToUTF32(dst []uint32, src []byte, srcLen int, flags Flags) (Progress, error) {
	return UTF8ToUTF32NE(dst, src, srcLen, flags)
}

// UTF8ToUTF32NE converts UTF-8 to UTF-32 in host order.
func UTF8ToUTF32NE(dst []uint32, src []byte, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF8ToUTF32LE(dst, src, srcLen, flags)
	}
	return UTF8ToUTF32BE(dst, src, srcLen, flags)
}

// UTF8ToUTF32LE converts UTF-8 to UTF-32 units stored little-endian.
func UTF8ToUTF32LE(dst []uint32, src []byte, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF8ToUTF32LELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf8Dec, utf32Enc(true))
}

// UTF8ToUTF32BE converts UTF-8 to UTF-32 units stored big-endian.
func UTF8ToUTF32BE(dst []uint32, src []byte, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF8ToUTF32BELength(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf8Dec, utf32Enc(false))
}

// UTF32ToUTF8Length returns the number of bytes src converts to. A leading
// BOM selects the source order; host order is assumed without one.
func UTF32ToUTF8Length(src []uint32, srcLen int, flags Flags) (Progress, error) {
	return measureSniffed(src, srcLen, flags, pickUTF32, utf32NativeDec, utf8Enc)
}

// UTF32LEToUTF8Length returns the number of bytes little-endian src converts to.
func UTF32LEToUTF8Length(src []uint32, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf32Dec(true), utf8Enc)
}

// UTF32BEToUTF8Length returns the number of bytes big-endian src converts to.
func UTF32BEToUTF8Length(src []uint32, srcLen int, flags Flags) (Progress, error) {
	return measure(src, srcLen, flags, utf32Dec(false), utf8Enc)
}

// UTF32NEToUTF8Length returns the number of bytes host-order src converts to.
func UTF32NEToUTF8Length(src []uint32, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF32LEToUTF8Length(src, srcLen, flags)
	}
	return UTF32BEToUTF8Length(src, srcLen, flags)
}

// UTF32ToUTF8 converts UTF-32 to UTF-8. A leading BOM selects the source
// order; host order is assumed without one.
func UTF32ToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF32ToUTF8Length(src, srcLen, flags)
	}
	return convertSniffed(dst, src, srcLen, flags, pickUTF32, utf32NativeDec, utf8Enc)
}

// UTF32LEToUTF8 converts UTF-32 units stored little-endian to UTF-8.
func UTF32LEToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF32LEToUTF8Length(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf32Dec(true), utf8Enc)
}

// UTF32BEToUTF8 converts UTF-32 units stored big-endian to UTF-8.
func UTF32BEToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if dst == nil {
		return UTF32BEToUTF8Length(src, srcLen, flags)
	}
	return convert(dst, src, srcLen, flags, utf32Dec(false), utf8Enc)
}

// UTF32NEToUTF8 converts host-order UTF-32 to UTF-8.
func UTF32NEToUTF8(dst []byte, src []uint32, srcLen int, flags Flags) (Progress, error) {
	if HostLittleEndian {
		return UTF32LEToUTF8(dst, src, srcLen, flags)
	}
	return UTF32BEToUTF8(dst, src, srcLen, flags)
}
