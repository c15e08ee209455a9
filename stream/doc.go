// Package stream implements the binary stream encoding used by appkit
// messages and asset metadata: fixed-width little-endian primitives and
// length-prefixed strings and byte slices.
//
// Writer and Reader carry a sticky error so sequences of writes or
// reads can be chained without checking each call; check Err (or the
// error from Flush) once at the end.
//
// ContentType parses MIME-style content type strings and resolves
// their charset parameter to a character encoding.
package stream
