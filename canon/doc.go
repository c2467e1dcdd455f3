// Package canon moves strings across the WebAssembly Component Model
// boundary.
//
// A component declares one of three string encodings. UTF-8 strings are
// (ptr, byte length). UTF-16 strings are (ptr, code unit count) with
// little-endian units at a 2-byte aligned address. The compact Latin-1+UTF-16
// encoding stores Latin-1 bytes when every code point fits in one byte and
// UTF-16 otherwise, setting the high bit of the length to mark the UTF-16
// case.
//
// Lifting and lowering both go through package utf, so malformed guest data
// is repaired or rejected according to Options.Flags. A leading U+0000 or
// U+FEFF is string content here and is carried across unchanged; ForbidBOM
// rejects strings that start with U+FEFF.
//
// # Example
//
//	ctx := canon.NewLowerContext(ctx, canon.Options{
//	    Memory:    mem,
//	    Allocator: alloc,
//	    Encoding:  canon.StringEncodingUTF16,
//	})
//	ptr, n, err := canon.LowerString(ctx, "héllo")
package canon
