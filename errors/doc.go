// Package errors provides structured error types for the textconv module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The conversion engine returns the bare sentinels below so that it
// never allocates; the collaborator layers (canon, host, stream) attach a phase,
// a source offset and a detail message with the Builder or At.
//
//	ErrInvalidArguments  nil input, bad length, truncated trailing sequence
//	ErrInvalidBOM        a BOM was present but forbidden by flags
//	ErrInvalidCodePoint  malformed unit under the error-on-invalid policy
//	ErrOutOfMemory       output capacity (terminator included) exhausted
//
// Structured construction:
//
//	err := errors.New(errors.PhaseLift, errors.KindInvalidCodePoint).
//		Path("greet", "name").
//		Offset(12).
//		Detail("unpaired surrogate").
//		Build()
//
// errors.Is(err, errors.ErrInvalidCodePoint) reports true for any phase.
// StatusOf maps an error to the numeric Status used by the wasm host ABI.
package errors
