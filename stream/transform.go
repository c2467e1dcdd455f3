package stream

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/wippyai/textconv/errors"
	"github.com/wippyai/textconv/utf"
)

// Transformer converts a stream held in one form into another.
type Transformer struct {
	from, to utf.Form
	src      utf.Form // from with a sniffed byte order settled
	flags    utf.Flags
	begun    bool
	offset   int // source units consumed so far
}

var _ transform.Transformer = (*Transformer)(nil)

// New returns a Transformer from one form to another.
func New(from, to utf.Form, flags utf.Flags) *Transformer {
	t := &Transformer{from: from, to: to, flags: flags}
	t.Reset()
	return t
}

// NewDecoder returns a Transformer producing UTF-8 from the given form.
func NewDecoder(from utf.Form, flags utf.Flags) *Transformer {
	return New(from, utf.FormUTF8, flags)
}

// NewEncoder returns a Transformer producing the given form from UTF-8.
func NewEncoder(to utf.Form, flags utf.Flags) *Transformer {
	return New(utf.FormUTF8, to, flags)
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.src = t.from
	t.begun = false
	t.offset = 0
}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.begun && (t.src == utf.FormUTF16 || t.src == utf.FormUTF32) {
		if !t.sniff(src, atEOF) {
			return 0, 0, transform.ErrShortSrc
		}
	}
	w, ow := t.src.UnitSize(), t.to.UnitSize()

	for nSrc < len(src) {
		rest := src[nSrc:]
		if len(rest) < w {
			break
		}
		if len(dst) == nDst {
			return nDst, nSrc, transform.ErrShortDst
		}

		// Zero units, and byte order marks after the start, are content.
		if r, n := utf.LeadingUnit(rest, t.src); n > 0 && (r == 0 || t.begun) {
			out := utf.AppendRune(nil, t.to, r)
			if len(dst)-nDst < len(out) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], out)
			nSrc += n
			t.offset += n / w
			t.begun = true
			continue
		}

		p, cerr := utf.Transcode(dst[nDst:], t.to, rest, t.src, len(rest)/w, t.flags)
		nDst += p.Written * ow
		nSrc += p.Consumed * w
		t.offset += p.Consumed
		if p.Consumed > 0 {
			t.begun = true
		}

		switch {
		case cerr == nil:
		case errors.Is(cerr, utf.ErrOutOfMemory):
			if p.Consumed == 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		case errors.Is(cerr, utf.ErrInvalidArguments):
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errors.At(errors.PhaseStream, cerr, t.offset, "truncated input at end of stream")
		default:
			return nDst, nSrc, errors.At(errors.PhaseStream, cerr, t.offset, t.src.String())
		}
	}

	if nSrc < len(src) {
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, errors.New(errors.PhaseStream, errors.KindInvalidArguments).
			Offset(t.offset).
			Detail("%d trailing bytes do not form a %v code unit", len(src)-nSrc, t.src).
			Build()
	}
	return nDst, nSrc, nil
}

// sniff settles the byte order of a UTF-16 or UTF-32 source from a leading
// BOM, falling back to host order. It reports false while more input is
// needed to decide.
func (t *Transformer) sniff(src []byte, atEOF bool) bool {
	le, be := utf.FormUTF16LE, utf.FormUTF16BE
	bom := utf.HasUTF16BOM(src)
	if t.src == utf.FormUTF32 {
		le, be = utf.FormUTF32LE, utf.FormUTF32BE
		bom = utf.HasUTF32BOM(src)
	}
	switch {
	case bom && src[0] == 0xFF:
		t.src = le
	case bom:
		t.src = be
	case len(src) < t.src.UnitSize() && !atEOF:
		return false
	case utf.HostLittleEndian:
		t.src = le
	default:
		t.src = be
	}
	return true
}

// Encoding adapts a form to golang.org/x/text/encoding. Decoding produces
// UTF-8 from the form and encoding produces the form from UTF-8.
type Encoding struct {
	Form  utf.Form
	Flags utf.Flags
}

var _ encoding.Encoding = Encoding{}

// NewDecoder implements encoding.Encoding.
func (e Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: NewDecoder(e.Form, e.Flags)}
}

// NewEncoder implements encoding.Encoding.
func (e Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: NewEncoder(e.Form, e.Flags)}
}

func (e Encoding) String() string {
	return e.Form.String()
}

// NewReader converts everything read from r.
func NewReader(r io.Reader, from, to utf.Form, flags utf.Flags) io.Reader {
	return transform.NewReader(r, New(from, to, flags))
}

// NewWriter converts everything written before passing it to w. Close flushes
// the remaining input and reports a truncated tail.
func NewWriter(w io.Writer, from, to utf.Form, flags utf.Flags) io.WriteCloser {
	return transform.NewWriter(w, New(from, to, flags))
}
