package utf

import (
	"strconv"
	"strings"

	"github.com/wippyai/textconv/errors"
)

// Form names an encoding together with the byte order of its units when they
// are held in raw memory.
type Form uint8

const (
	FormUTF8 Form = iota
	// FormUTF16 reads a BOM to pick the order and writes host order.
	FormUTF16
	FormUTF16LE
	FormUTF16BE
	// FormUTF32 reads a BOM to pick the order and writes host order.
	FormUTF32
	FormUTF32LE
	FormUTF32BE
	formCount
)

var formNames = [formCount]string{
	FormUTF8:    "utf-8",
	FormUTF16:   "utf-16",
	FormUTF16LE: "utf-16le",
	FormUTF16BE: "utf-16be",
	FormUTF32:   "utf-32",
	FormUTF32LE: "utf-32le",
	FormUTF32BE: "utf-32be",
}

// String returns the IANA-style name of f.
func (f Form) String() string {
	if f < formCount {
		return formNames[f]
	}
	return "form(" + strconv.Itoa(int(f)) + ")"
}

// UnitSize returns the size in bytes of one code unit.
func (f Form) UnitSize() int {
	switch f {
	case FormUTF16, FormUTF16LE, FormUTF16BE:
		return 2
	case FormUTF32, FormUTF32LE, FormUTF32BE:
		return 4
	}
	return 1
}

// Valid reports whether f names a known form.
func (f Form) Valid() bool {
	return f < formCount
}

// Forms returns every form in declaration order.
func Forms() []Form {
	out := make([]Form, 0, formCount)
	for f := FormUTF8; f < formCount; f++ {
		out = append(out, f)
	}
	return out
}

// ParseForm resolves a form name. Case, dashes and underscores are ignored,
// so "UTF16LE", "utf-16le" and "utf_16_le" are the same form.
func ParseForm(name string) (Form, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(name))
	for f := FormUTF8; f < formCount; f++ {
		if strings.ReplaceAll(formNames[f], "-", "") == key {
			return f, nil
		}
	}
	if key == "utf16ne" {
		return FormUTF16, nil
	}
	if key == "utf32ne" {
		return FormUTF32, nil
	}
	return 0, errors.New(errors.PhaseValidate, errors.KindUnsupported).
		Detail("unknown form %q", name).
		Build()
}

func hostBytesDec(f Form) decoder[byte] {
	switch f {
	case FormUTF16:
		if HostLittleEndian {
			return utf16LEBytesDec
		}
		return utf16BEBytesDec
	case FormUTF32:
		if HostLittleEndian {
			return utf32LEBytesDec
		}
		return utf32BEBytesDec
	}
	return bytesDec(f)
}

func bytesDec(f Form) decoder[byte] {
	switch f {
	case FormUTF16LE:
		return utf16LEBytesDec
	case FormUTF16BE:
		return utf16BEBytesDec
	case FormUTF32LE:
		return utf32LEBytesDec
	case FormUTF32BE:
		return utf32BEBytesDec
	case FormUTF16, FormUTF32:
		return hostBytesDec(f)
	}
	return utf8Dec
}

func bytesEnc(f Form) encoder[byte] {
	switch f {
	case FormUTF16:
		if HostLittleEndian {
			return utf16LEBytesEnc
		}
		return utf16BEBytesEnc
	case FormUTF16LE:
		return utf16LEBytesEnc
	case FormUTF16BE:
		return utf16BEBytesEnc
	case FormUTF32:
		if HostLittleEndian {
			return utf32LEBytesEnc
		}
		return utf32BEBytesEnc
	case FormUTF32LE:
		return utf32LEBytesEnc
	case FormUTF32BE:
		return utf32BEBytesEnc
	}
	return utf8Enc
}

func bytesPick(f Form) func([]byte) (decoder[byte], bool) {
	switch f {
	case FormUTF16:
		return pickUTF16Bytes
	case FormUTF32:
		return pickUTF32Bytes
	}
	return nil
}

// Transcode converts src, held in memory as form from, into dst in form to.
// srcLen and the returned Progress count code units of the respective forms;
// the capacity of dst is len(dst) bytes. from and to may be equal, which
// validates and repairs src according to flags. A nil dst is a length query.
func Transcode(dst []byte, to Form, src []byte, from Form, srcLen int, flags Flags) (Progress, error) {
	if !to.Valid() || !from.Valid() {
		return Progress{}, ErrInvalidArguments
	}
	if dst == nil {
		return TranscodeLength(to, src, from, srcLen, flags)
	}
	if pick := bytesPick(from); pick != nil {
		return convertSniffed(dst, src, srcLen, flags, pick, hostBytesDec(from), bytesEnc(to))
	}
	return convert(dst, src, srcLen, flags, bytesDec(from), bytesEnc(to))
}

// TranscodeLength returns the number of code units of form to that src
// converts to, excluding the terminator.
func TranscodeLength(to Form, src []byte, from Form, srcLen int, flags Flags) (Progress, error) {
	if !to.Valid() || !from.Valid() {
		return Progress{}, ErrInvalidArguments
	}
	if pick := bytesPick(from); pick != nil {
		return measureSniffed(src, srcLen, flags, pick, hostBytesDec(from), bytesEnc(to))
	}
	return measure(src, srcLen, flags, bytesDec(from), bytesEnc(to))
}

// LeadingUnit reports whether src, held as form f, starts with U+0000 or a
// byte order mark in f's order. Those are the two values the conversion
// functions treat as control at the start of the input; callers that need
// them as content can split them off first. n is their size in bytes, 0 when
// src starts with anything else.
func LeadingUnit(src []byte, f Form) (r rune, n int) {
	dec := bytesDec(f)
	if len(src) < dec.width {
		return 0, 0
	}
	if isZero(src[:dec.width]) {
		return 0, dec.width
	}
	if n := dec.bom(src); n > 0 {
		return BOM, n
	}
	return 0, 0
}

// AppendRune appends r encoded in form f.
func AppendRune(dst []byte, f Form, r rune) []byte {
	var buf [4]byte
	n := bytesEnc(f).encode(buf[:], r)
	return append(dst, buf[:n]...)
}
