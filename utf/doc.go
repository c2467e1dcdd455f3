// Package utf converts text between UTF-8, UTF-16 and UTF-32.
//
// Every conversion writes into a caller-owned output slice and never
// allocates. A call reports its progress even when it fails, so a caller can
// enlarge the output or advance the input and resume:
//
//	var buf [64]uint16
//	p, err := utf.UTF8ToUTF16(buf[:], src, len(src), 0)
//	if errors.Is(err, utf.ErrOutOfMemory) {
//	    // buf[:p.Written] is valid, src[:p.Consumed] was processed
//	}
//
// # Inputs
//
// Sources are typed code unit slices ([]byte, []uint16, []uint32) whose
// elements hold the units exactly as stored. The LE and BE entry points read
// each element through an endian-correcting accessor; NE reads in host order.
// The entry points without an order suffix (UTF16ToUTF8, UTF32ToUTF8,
// UTF16ToUTF32, UTF32ToUTF16) let a leading BOM pick the source order and fall
// back to host order when there is none.
//
// srcLen is either an explicit unit count or NullTerminated, in which case the
// first zero unit ends the input. A zero-length input, or one that starts with
// a zero unit, always succeeds with no output.
//
// # Outputs
//
// On success the output holds Progress.Written units followed by one zero
// terminator unit, so dst needs Written+1 units. A nil dst turns a conversion
// into the matching length query.
//
// # Policy
//
// Flags select two independent policies. ForbidBOM rejects a leading BOM
// instead of skipping it. ErrorOnInvalid fails on malformed units instead of
// substituting U+FFFD. Truncated trailing sequences always fail with
// ErrInvalidArguments; they are never replaced.
//
// Transcode and TranscodeLength provide the same engine over byte buffers in
// an explicit Form, for callers that hold text in raw memory.
package utf
