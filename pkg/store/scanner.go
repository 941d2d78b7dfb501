package store

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ssargent/curdle/pkg/codec"
)

// RecordScanner provides sequential access to records in a scores file
type RecordScanner struct {
	reader *bufio.Reader
	codec  *codec.RecordCodec
	offset int64
}

// NewRecordScanner creates a scanner positioned at the start of r
func NewRecordScanner(r io.Reader) *RecordScanner {
	return &RecordScanner{
		reader: bufio.NewReader(r),
		codec:  codec.NewRecordCodec(),
	}
}

// FindPlayer scans forward for the first record whose name field equals
// name. Lines that are not exactly codec.RecordSize bytes are not
// candidates and are skipped, which tolerates stray content in the
// file. A name-field decode failure on a candidate line also skips it.
//
// A matched record whose score field fails to decode is file
// corruption worth surfacing: the scan aborts with ErrCorruptRecord
// rather than continuing to look for another match.
//
// On a match the returned offset points immediately after the record,
// so callers rewrite in place at EndOffset - codec.RecordSize.
func (s *RecordScanner) FindPlayer(name string) (Match, bool, error) {
	for {
		line, err := s.reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Match{}, false, fmt.Errorf("read scores file: %w", err)
		}
		s.offset += int64(len(line))

		if len(line) == codec.RecordSize {
			candidate, decErr := s.codec.DecodeName(line[:codec.FieldSize])
			if decErr == nil && candidate == name {
				if line[codec.RecordSize-1] != '\n' {
					return Match{}, false, fmt.Errorf("%w: record for %q is unterminated", ErrCorruptRecord, name)
				}
				score, scoreErr := s.codec.DecodeScore(line[codec.FieldSize : codec.FieldSize*2])
				if scoreErr != nil {
					return Match{}, false, fmt.Errorf("%w: %v", ErrCorruptRecord, scoreErr)
				}
				return Match{EndOffset: s.offset, Score: score}, true, nil
			}
		}

		if err == io.EOF {
			return Match{}, false, nil
		}
	}
}

// CountRecords scans to the end of the stream and reports how many
// well-formed records it passed.
func (s *RecordScanner) CountRecords() (int, error) {
	count := 0
	for {
		line, err := s.reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return count, fmt.Errorf("read scores file: %w", err)
		}
		s.offset += int64(len(line))

		if len(line) == codec.RecordSize {
			if _, decErr := s.codec.Decode(line); decErr == nil {
				count++
			}
		}

		if err == io.EOF {
			return count, nil
		}
	}
}

// Offset returns the number of bytes consumed so far
func (s *RecordScanner) Offset() int64 {
	return s.offset
}
