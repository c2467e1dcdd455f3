package utf

import "github.com/wippyai/textconv/errors"

// Flags controls BOM and invalid input handling. The zero value skips a
// leading BOM and replaces malformed input with U+FFFD.
type Flags uint32

const (
	// ForbidBOM fails with ErrInvalidBOM when the input starts with a BOM.
	ForbidBOM Flags = 1 << iota
	// ErrorOnInvalid fails with ErrInvalidCodePoint instead of substituting
	// RuneError for malformed units.
	ErrorOnInvalid
)

// NullTerminated is the srcLen sentinel asking the engine to scan for a zero
// unit instead of using an explicit length.
const NullTerminated = -1

const (
	// RuneError is the replacement character.
	RuneError = '\uFFFD'
	// MaxCodePoint is the largest Unicode scalar value.
	MaxCodePoint = '\U0010FFFF'
	// BOM is the byte order mark code point.
	BOM = '\uFEFF'
)

// Progress reports how far a conversion got. Written counts output units
// excluding the terminator, Consumed counts input units including a skipped
// BOM. Both are set on every return path.
type Progress struct {
	Written  int
	Consumed int
}

// Errors returned by the conversion functions.
var (
	ErrInvalidArguments = errors.ErrInvalidArguments
	ErrInvalidBOM       = errors.ErrInvalidBOM
	ErrInvalidCodePoint = errors.ErrInvalidCodePoint
	ErrOutOfMemory      = errors.ErrOutOfMemory
)
