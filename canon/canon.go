package canon

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/textconv"
	"github.com/wippyai/textconv/errors"
	"github.com/wippyai/textconv/utf"
)

// StringEncoding represents the string encoding for canonical ABI
type StringEncoding byte

const (
	StringEncodingUTF8 StringEncoding = iota
	StringEncodingUTF16
	StringEncodingLatin1UTF16
)

func (e StringEncoding) String() string {
	switch e {
	case StringEncodingUTF8:
		return "utf8"
	case StringEncodingUTF16:
		return "utf16"
	case StringEncodingLatin1UTF16:
		return "latin1+utf16"
	}
	return "unknown"
}

const (
	// UTF16Tag marks a compact string length as counting UTF-16 units.
	UTF16Tag = 1 << 31
	// MaxStringBytes is the largest encoded string the ABI can describe.
	MaxStringBytes = UTF16Tag - 1
)

// Options holds options for canonical ABI string operations
type Options struct {
	Memory    textconv.Memory
	Allocator textconv.Allocator
	Encoding  StringEncoding
	Flags     utf.Flags
}

// LiftContext holds context for lifting strings from guest memory
type LiftContext struct {
	Ctx     context.Context
	Options Options
}

// LowerContext holds context for lowering strings into guest memory
type LowerContext struct {
	Ctx     context.Context
	Options Options
}

// NewLiftContext creates context for lifting guest strings to Go.
func NewLiftContext(ctx context.Context, opts Options) *LiftContext {
	return &LiftContext{Ctx: ctx, Options: opts}
}

// NewLowerContext creates context for lowering Go strings to the guest.
func NewLowerContext(ctx context.Context, opts Options) *LowerContext {
	return &LowerContext{Ctx: ctx, Options: opts}
}

// LiftString reads a string from memory. length is in bytes for UTF-8 and
// Latin-1 data and in code units for UTF-16 data.
func LiftString(ctx *LiftContext, ptr, length uint32) (string, error) {
	opts := ctx.Options
	if opts.Memory == nil {
		return "", errors.NilPointer(errors.PhaseLift, "memory")
	}

	switch opts.Encoding {
	case StringEncodingUTF8:
		data, err := read(opts.Memory, ptr, length)
		if err != nil {
			return "", err
		}
		if opts.Flags&utf.ForbidBOM == 0 && utf8.Valid(data) {
			return string(data), nil
		}
		out, err := transcode(errors.PhaseLift, utf.FormUTF8, data, utf.FormUTF8, opts.Flags)
		if err != nil {
			logFailure("lift", opts.Encoding, ptr, length, err)
			return "", err
		}
		return string(out), nil

	case StringEncodingUTF16:
		return liftUTF16(opts, ptr, length)

	case StringEncodingLatin1UTF16:
		if length&UTF16Tag != 0 {
			return liftUTF16(opts, ptr, length&^UTF16Tag)
		}
		data, err := read(opts.Memory, ptr, length)
		if err != nil {
			return "", err
		}
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", errors.Wrap(errors.PhaseLift, errors.KindInvalidCodePoint, err, "latin-1 decode")
		}
		return string(out), nil
	}
	return "", errors.Unsupported(errors.PhaseLift, "string encoding "+opts.Encoding.String())
}

func liftUTF16(opts Options, ptr, units uint32) (string, error) {
	if ptr%2 != 0 {
		return "", errors.New(errors.PhaseLift, errors.KindInvalidArguments).
			Value(ptr).
			Detail("utf-16 string at unaligned address %d", ptr).
			Build()
	}
	if uint64(units)*2 > MaxStringBytes {
		return "", errors.OutOfBounds(errors.PhaseLift, ptr, units)
	}
	data, err := read(opts.Memory, ptr, units*2)
	if err != nil {
		return "", err
	}
	out, err := transcode(errors.PhaseLift, utf.FormUTF8, data, utf.FormUTF16LE, opts.Flags)
	if err != nil {
		logFailure("lift", opts.Encoding, ptr, units, err)
		return "", err
	}
	return string(out), nil
}

// LowerString encodes s, allocates room for it through the allocator and
// writes it. It returns the pointer and the length in the ABI's terms. The
// empty string is (0, 0) and allocates nothing.
func LowerString(ctx *LowerContext, s string) (ptr, length uint32, err error) {
	opts := ctx.Options
	if opts.Memory == nil {
		return 0, 0, errors.NilPointer(errors.PhaseLower, "memory")
	}
	if opts.Allocator == nil {
		return 0, 0, errors.NilPointer(errors.PhaseLower, "allocator")
	}
	if len(s) == 0 {
		return 0, 0, nil
	}

	var data []byte
	var align, unit uint32 = 1, 1
	var tag uint32
	switch opts.Encoding {
	case StringEncodingUTF8:
		if opts.Flags&utf.ForbidBOM == 0 && utf8.ValidString(s) {
			data = []byte(s)
			break
		}
		data, err = transcode(errors.PhaseLower, utf.FormUTF8, []byte(s), utf.FormUTF8, opts.Flags)

	case StringEncodingUTF16:
		align, unit = 2, 2
		data, err = transcode(errors.PhaseLower, utf.FormUTF16LE, []byte(s), utf.FormUTF8, opts.Flags)

	case StringEncodingLatin1UTF16:
		align = 2
		if isLatin1(s) {
			data, err = charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
			if err != nil {
				err = errors.Wrap(errors.PhaseLower, errors.KindInvalidCodePoint, err, "latin-1 encode")
			}
			break
		}
		unit, tag = 2, UTF16Tag
		data, err = transcode(errors.PhaseLower, utf.FormUTF16LE, []byte(s), utf.FormUTF8, opts.Flags)

	default:
		return 0, 0, errors.Unsupported(errors.PhaseLower, "string encoding "+opts.Encoding.String())
	}
	if err != nil {
		logFailure("lower", opts.Encoding, 0, uint32(len(s)), err)
		return 0, 0, err
	}
	if len(data) > MaxStringBytes {
		return 0, 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Detail("encoded string is %d bytes", len(data)).
			Build()
	}

	size := uint32(len(data))
	ptr, err = opts.Allocator.Alloc(size, align)
	if err != nil {
		return 0, 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Cause(err).
			Detail("failed to allocate %d bytes (align %d)", size, align).
			Build()
	}
	if err := opts.Memory.Write(ptr, data); err != nil {
		opts.Allocator.Free(ptr, size, align)
		return 0, 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Cause(err).
			Value(ptr).
			Detail("write %d bytes at %d", size, ptr).
			Build()
	}

	if unit == 2 {
		return ptr, size/2 | tag, nil
	}
	return ptr, size, nil
}

func read(mem textconv.Memory, ptr, n uint32) ([]byte, error) {
	data, err := mem.Read(ptr, n)
	if err != nil {
		return nil, errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Cause(err).
			Value(ptr).
			Detail("range ptr=%d len=%d out of bounds", ptr, n).
			Build()
	}
	return data, nil
}

func isLatin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}

// transcode converts all of src. Leading U+0000 and U+FEFF units are content
// and are re-encoded directly, the engine would otherwise read them as an
// empty string or a byte order mark.
func transcode(phase errors.Phase, to utf.Form, src []byte, from utf.Form, flags utf.Flags) ([]byte, error) {
	var out []byte
	units := 0
	for {
		r, n := utf.LeadingUnit(src, from)
		if n == 0 {
			break
		}
		if r == utf.BOM && flags&utf.ForbidBOM != 0 {
			return nil, errors.At(phase, utf.ErrInvalidBOM, units, from.String())
		}
		out = utf.AppendRune(out, to, r)
		src = src[n:]
		units += n / from.UnitSize()
	}
	if len(src) == 0 {
		return out, nil
	}

	n := len(src) / from.UnitSize()
	p, err := utf.TranscodeLength(to, src, from, n, flags)
	if err != nil {
		return nil, errors.At(phase, err, units+p.Consumed, from.String())
	}
	w := to.UnitSize()
	dst := make([]byte, (p.Written+1)*w)
	p, err = utf.Transcode(dst, to, src, from, n, flags)
	if err != nil {
		return nil, errors.At(phase, err, units+p.Consumed, from.String())
	}
	return append(out, dst[:p.Written*w]...), nil
}

func logFailure(op string, enc StringEncoding, ptr, length uint32, err error) {
	Logger().Debug("canon string conversion failed",
		zap.String("op", op),
		zap.Stringer("encoding", enc),
		zap.Uint32("ptr", ptr),
		zap.Uint32("length", length),
		zap.Stringer("status", errors.StatusOf(err)),
		zap.Error(err),
	)
}
