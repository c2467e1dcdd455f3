// Package stream runs the conversion engine over byte streams through
// golang.org/x/text/transform.
//
// A Transformer honours a byte order mark only at the very start of the
// stream, where it follows the configured Flags. Everywhere else U+FEFF and
// U+0000 are ordinary content. A code unit or sequence split across chunk
// boundaries is carried over to the next Transform call; at EOF a truncated
// sequence is an error wrapping utf.ErrInvalidArguments.
package stream
