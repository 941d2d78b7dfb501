package store

import (
	"fmt"
	"io"
	"os"

	"github.com/ssargent/curdle/pkg/codec"
)

// RecordWriter issues positioned record writes against an open scores
// file. Each record is encoded first and written with a single WriteAt
// call so a record is never split across two writes; a failure leaves
// either the old bytes or the new bytes on disk, not a mix of both.
type RecordWriter struct {
	file       *os.File
	codec      *codec.RecordCodec
	syncWrites bool
}

// NewRecordWriter creates a writer over an already-open file
func NewRecordWriter(file *os.File, syncWrites bool) *RecordWriter {
	return &RecordWriter{
		file:       file,
		codec:      codec.NewRecordCodec(),
		syncWrites: syncWrites,
	}
}

// WriteRecordAt encodes one record and writes it at the given offset.
// A short write is a failure, never retried.
func (w *RecordWriter) WriteRecordAt(name string, score int32, offset int64) error {
	buf, err := w.codec.Encode(name, score)
	if err != nil {
		return err
	}

	n, err := w.file.WriteAt(buf, offset)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if n != codec.RecordSize {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrWriteFailure, n, codec.RecordSize)
	}

	if w.syncWrites {
		if err := w.file.Sync(); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailure, err)
		}
	}

	return nil
}

// Append writes one record at the current end of file and returns the
// offset it was written at.
func (w *RecordWriter) Append(name string, score int32) (int64, error) {
	end, err := w.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeekFailure, err)
	}

	if err := w.WriteRecordAt(name, score, end); err != nil {
		return 0, err
	}

	return end, nil
}
