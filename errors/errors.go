package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // reading source code units
	PhaseEncode   Phase = "encode"   // writing target code units
	PhaseBOM      Phase = "bom"      // byte order mark handling
	PhaseValidate Phase = "validate" // argument validation
	PhaseLift     Phase = "lift"     // guest memory to Go
	PhaseLower    Phase = "lower"    // Go to guest memory
	PhaseHost     Phase = "host"     // host module calls
	PhaseStream   Phase = "stream"   // chunked transforms
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArguments Kind = "invalid_arguments"
	KindInvalidBOM       Kind = "invalid_bom"
	KindInvalidCodePoint Kind = "invalid_code_point"
	KindOutOfMemory      Kind = "out_of_memory"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindNilPointer       Kind = "nil_pointer"
	KindAllocation       Kind = "allocation"
	KindUnsupported      Kind = "unsupported"
)

// Engine sentinels. Conversion routines return these values directly so the
// hot path never allocates; callers match them with errors.Is.
var (
	ErrInvalidArguments = &Error{Kind: KindInvalidArguments}
	ErrInvalidBOM       = &Error{Kind: KindInvalidBOM}
	ErrInvalidCodePoint = &Error{Kind: KindInvalidCodePoint}
	ErrOutOfMemory      = &Error{Kind: KindOutOfMemory}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int // code unit offset into the source, -1 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset > 0 || (e.Offset == 0 && e.Phase != "") {
		b.WriteString(" (unit ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Kinds must agree; the phase
// is only compared when the target names one, so the engine sentinels match
// any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Phase == "" || t.Phase == e.Phase
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the source unit offset at which the failure happened
func (b *Builder) Offset(n int) *Builder {
	b.err.Offset = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Convenience constructors for common error patterns

// At attaches phase and position to an engine error. Non-engine errors and nil
// are returned unchanged.
func At(phase Phase, err error, offset int, detail string) error {
	e, ok := err.(*Error)
	if !ok || e == nil {
		return err
	}
	return &Error{
		Phase:  phase,
		Kind:   e.Kind,
		Offset: offset,
		Detail: detail,
		Cause:  e.Cause,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Offset: -1,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: -1,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error for a guest memory range
func OutOfBounds(phase Phase, ptr, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: -1,
		Detail: fmt.Sprintf("range ptr=%d len=%d out of bounds", ptr, length),
		Value:  ptr,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Offset: -1,
		Detail: what + " is nil",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}

// Status is the numeric form of an error used across ABI boundaries.
type Status int32

const (
	StatusOK Status = iota
	StatusInvalidArguments
	StatusInvalidBOM
	StatusInvalidCodePoint
	StatusOutOfMemory
	StatusFault // memory access or allocation failures outside the taxonomy
)

var statusNames = [...]string{
	StatusOK:               "ok",
	StatusInvalidArguments: string(KindInvalidArguments),
	StatusInvalidBOM:       string(KindInvalidBOM),
	StatusInvalidCodePoint: string(KindInvalidCodePoint),
	StatusOutOfMemory:      string(KindOutOfMemory),
	StatusFault:            "fault",
}

// String returns the status name
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// StatusOf maps an error to its Status. nil maps to StatusOK.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	for cur := err; cur != nil; {
		if x, ok := cur.(*Error); ok {
			e = x
			break
		}
		u, ok := cur.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cur = u.Unwrap()
	}
	if e == nil {
		return StatusFault
	}
	switch e.Kind {
	case KindInvalidArguments, KindNilPointer:
		return StatusInvalidArguments
	case KindInvalidBOM:
		return StatusInvalidBOM
	case KindInvalidCodePoint:
		return StatusInvalidCodePoint
	case KindOutOfMemory:
		return StatusOutOfMemory
	default:
		return StatusFault
	}
}

// Err maps a Status back to the matching sentinel. StatusOK maps to nil.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusInvalidArguments:
		return ErrInvalidArguments
	case StatusInvalidBOM:
		return ErrInvalidBOM
	case StatusInvalidCodePoint:
		return ErrInvalidCodePoint
	case StatusOutOfMemory:
		return ErrOutOfMemory
	default:
		return &Error{Kind: Kind("fault"), Offset: -1, Detail: s.String()}
	}
}
