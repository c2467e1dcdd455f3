package host

import "github.com/wippyai/textconv/utf"

// Direction is one exported conversion.
type Direction struct {
	Name string
	From utf.Form
	To   utf.Form
}

var directions = []Direction{
	{"utf8_to_utf16", utf.FormUTF8, utf.FormUTF16LE},
	{"utf8_to_utf16le", utf.FormUTF8, utf.FormUTF16LE},
	{"utf8_to_utf16be", utf.FormUTF8, utf.FormUTF16BE},
	{"utf8_to_utf16ne", utf.FormUTF8, utf.FormUTF16LE},
	{"utf8_to_utf32", utf.FormUTF8, utf.FormUTF32LE},
	{"utf8_to_utf32le", utf.FormUTF8, utf.FormUTF32LE},
	{"utf8_to_utf32be", utf.FormUTF8, utf.FormUTF32BE},
	{"utf8_to_utf32ne", utf.FormUTF8, utf.FormUTF32LE},

	{"utf16_to_utf8", utf.FormUTF16, utf.FormUTF8},
	{"utf16le_to_utf8", utf.FormUTF16LE, utf.FormUTF8},
	{"utf16be_to_utf8", utf.FormUTF16BE, utf.FormUTF8},
	{"utf16ne_to_utf8", utf.FormUTF16LE, utf.FormUTF8},
	{"utf32_to_utf8", utf.FormUTF32, utf.FormUTF8},
	{"utf32le_to_utf8", utf.FormUTF32LE, utf.FormUTF8},
	{"utf32be_to_utf8", utf.FormUTF32BE, utf.FormUTF8},
	{"utf32ne_to_utf8", utf.FormUTF32LE, utf.FormUTF8},

	{"utf16_to_utf32", utf.FormUTF16, utf.FormUTF32LE},
	{"utf16le_to_utf32le", utf.FormUTF16LE, utf.FormUTF32LE},
	{"utf16be_to_utf32be", utf.FormUTF16BE, utf.FormUTF32BE},
	{"utf16ne_to_utf32ne", utf.FormUTF16LE, utf.FormUTF32LE},
	{"utf32_to_utf16", utf.FormUTF32, utf.FormUTF16LE},
	{"utf32le_to_utf16le", utf.FormUTF32LE, utf.FormUTF16LE},
	{"utf32be_to_utf16be", utf.FormUTF32BE, utf.FormUTF16BE},
	{"utf32ne_to_utf16ne", utf.FormUTF32LE, utf.FormUTF16LE},
}

// Directions returns the exported conversions in export order.
func Directions() []Direction {
	return append([]Direction(nil), directions...)
}

// source settles the order of a sniffing source. With a BOM the engine picks
// the order itself; without one guest memory is little-endian.
func source(from utf.Form, src []byte) utf.Form {
	switch from {
	case utf.FormUTF16:
		if !utf.HasUTF16BOM(src) {
			return utf.FormUTF16LE
		}
	case utf.FormUTF32:
		if !utf.HasUTF32BOM(src) {
			return utf.FormUTF32LE
		}
	}
	return from
}
