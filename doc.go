// Package textconv converts text between UTF-8, UTF-16 and UTF-32.
//
// The conversion engine lives in package utf. It works on caller-owned
// buffers, never allocates, and reports partial progress on every return so a
// conversion that ran out of room can be resumed with a bigger buffer or the
// next chunk of input.
//
// # Packages
//
//	textconv/       Memory and Allocator interfaces shared by the adapters
//	├── utf/        Conversion engine, BOM detection, code point codecs
//	├── errors/     Structured errors and the numeric Status codes
//	├── stream/     golang.org/x/text transformers over the engine
//	├── canon/      Component Model string lifting and lowering
//	├── host/       WebAssembly host module exposing the engine to guests
//	└── cmd/utfconv Command line converter and interactive inspector
//
// # Quick Start
//
// Measure, allocate, convert:
//
//	src := []byte("héllo")
//	p, err := utf.UTF8ToUTF16LELength(src, len(src), 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dst := make([]uint16, p.Written+1)
//	if _, err := utf.UTF8ToUTF16LE(dst, src, len(src), 0); err != nil {
//	    log.Fatal(err)
//	}
//
// Pass utf.NullTerminated as the length to stop at the first zero unit.
//
// # Policies
//
// By default a leading byte order mark is skipped and malformed input is
// replaced with U+FFFD. utf.ForbidBOM turns a leading BOM into
// utf.ErrInvalidBOM; utf.ErrorOnInvalid turns malformed input into
// utf.ErrInvalidCodePoint. Truncated input, such as a UTF-8 sequence cut off
// by the end of the buffer, is always utf.ErrInvalidArguments.
//
// # Thread Safety
//
// The engine keeps no state; concurrent calls are safe as long as they do not
// share an output buffer. Memory implementations are not required to be safe
// for concurrent use.
package textconv
