// Package codec provides record serialization and deserialization for
// the curdle scores file.
//
// The codec package implements the fixed-width text record format used
// to persist player scores. This is the foundation for the scoreboard's
// find-or-append storage engine.
//
// # Record Format
//
// Records are serialized as fixed-width lines with the following
// structure:
//
//	[Name(10)][Score(10)]['\n'(1)]
//
// Fields:
//   - Name: up to 9 visible ASCII characters, null-padded; byte 9 of
//     the field is always the null terminator
//   - Score: decimal ASCII integer, left-justified and space-padded,
//     in the range [-999999999, 2147483647]
//   - Newline: a single 0x0A terminator
//
// The total record size is always 21 bytes. Lines of any other length
// in a scores file are not records and are skipped during scans.
//
// # Score Classification
//
// ParseScore reports a four-way classification rather than a bare
// error: valid, invalid (malformed text), overflow (above the int32
// ceiling), and underflow (below the field's renderable minimum).
// Overflow and underflow are kept distinct so callers can report which
// bound was violated.
//
// # Usage
//
// Basic encoding and decoding:
//
//	codec := codec.NewRecordCodec()
//
//	// Encode a record
//	line, err := codec.Encode("alice", 150)
//	if err != nil {
//	    return err
//	}
//
//	// Decode a record
//	record, err := codec.Decode(line)
//	if err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// RecordCodec instances are stateless and safe for concurrent use.
// Record structs are plain values and safe to share between goroutines.
package codec
