package utf

// Byte signatures of the byte order mark in each encoding.
var (
	bomUTF8    = [3]byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = [2]byte{0xFF, 0xFE}
	bomUTF16BE = [2]byte{0xFE, 0xFF}
	bomUTF32LE = [4]byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = [4]byte{0x00, 0x00, 0xFE, 0xFF}
)

// HasUTF8BOM reports whether b starts with the UTF-8 BOM.
func HasUTF8BOM(b []byte) bool {
	return len(b) >= 3 && [3]byte(b[:3]) == bomUTF8
}

// HasUTF16BOM reports whether b starts with a little- or big-endian UTF-16 BOM.
// A UTF-32LE BOM also satisfies this check since it starts with the same two
// bytes; use DetectBOM to tell them apart.
func HasUTF16BOM(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	p := [2]byte(b[:2])
	return p == bomUTF16LE || p == bomUTF16BE
}

// HasUTF32BOM reports whether b starts with a little- or big-endian UTF-32 BOM.
// All four bytes are inspected.
func HasUTF32BOM(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	p := [4]byte(b[:4])
	return p == bomUTF32LE || p == bomUTF32BE
}

// DetectBOM returns the form implied by a leading BOM and the BOM length in
// bytes. UTF-32 signatures are checked before UTF-16 ones. ok is false when b
// carries no BOM.
func DetectBOM(b []byte) (f Form, n int, ok bool) {
	switch {
	case HasUTF32BOM(b):
		if b[0] == 0xFF {
			return FormUTF32LE, 4, true
		}
		return FormUTF32BE, 4, true
	case HasUTF8BOM(b):
		return FormUTF8, 3, true
	case HasUTF16BOM(b):
		if b[0] == 0xFF {
			return FormUTF16LE, 2, true
		}
		return FormUTF16BE, 2, true
	}
	return FormUTF8, 0, false
}
