package codec

import (
	"bytes"
	"fmt"
	"strconv"
)

// Record layout constants. Every record in the scores file occupies
// exactly RecordSize bytes: a null-padded name field, a space-padded
// decimal score field, and a trailing newline.
const (
	// FieldSize is the width of the name and score fields in bytes.
	FieldSize = 10

	// NameMax is the maximum number of visible characters in a name.
	// Byte FieldSize-1 of the name field is always the null terminator.
	NameMax = FieldSize - 1

	// RecordSize is the total on-disk size of one record.
	RecordSize = FieldSize*2 + 1
)

// Score bounds. ScoreMax is the int32 ceiling; ScoreMin is the most
// negative value whose decimal rendering (sign included) still fits in
// a FieldSize-wide field.
const (
	ScoreMax int64 = 2147483647
	ScoreMin int64 = -999999999
)

// Record represents one decoded name/score pair
type Record struct {
	Name  string
	Score int32
}

// RecordCodec handles serialization and deserialization of records
type RecordCodec struct{}

// NewRecordCodec creates a new record codec instance
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{}
}

// Encode serializes a name and score into a fixed-width record.
// Format: [Name(10, null-padded)][Score(10, decimal, space-padded)]['\n']
func (c *RecordCodec) Encode(name string, score int32) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if int64(score) < ScoreMin {
		return nil, fmt.Errorf("score %d below minimum %d", score, ScoreMin)
	}

	buf := make([]byte, RecordSize)
	copy(buf[:NameMax], name)

	digits := strconv.FormatInt(int64(score), 10)
	copy(buf[FieldSize:], digits)
	for i := FieldSize + len(digits); i < FieldSize*2; i++ {
		buf[i] = ' '
	}
	buf[RecordSize-1] = '\n'

	return buf, nil
}

// Decode deserializes a full record line into a Record struct
func (c *RecordCodec) Decode(line []byte) (*Record, error) {
	if len(line) != RecordSize {
		return nil, fmt.Errorf("record must be %d bytes, got %d", RecordSize, len(line))
	}
	if line[RecordSize-1] != '\n' {
		return nil, fmt.Errorf("record missing newline terminator")
	}

	name, err := c.DecodeName(line[:FieldSize])
	if err != nil {
		return nil, err
	}

	score, err := c.DecodeScore(line[FieldSize : FieldSize*2])
	if err != nil {
		return nil, err
	}

	return &Record{Name: name, Score: score}, nil
}

// DecodeName extracts the name from a name field. The final byte of
// the field must be the null terminator; the name is the field content
// up to the first null.
func (c *RecordCodec) DecodeName(field []byte) (string, error) {
	if len(field) != FieldSize {
		return "", fmt.Errorf("name field must be %d bytes, got %d", FieldSize, len(field))
	}
	if field[FieldSize-1] != 0 {
		return "", fmt.Errorf("name field is not null-terminated")
	}

	name := field[:NameMax]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}

	return string(name), nil
}

// DecodeScore parses the score from a score field. Trailing padding is
// trimmed before parsing; the classification from ParseScore is
// reported unchanged.
func (c *RecordCodec) DecodeScore(field []byte) (int32, error) {
	if len(field) != FieldSize {
		return 0, fmt.Errorf("score field must be %d bytes, got %d", FieldSize, len(field))
	}

	text := string(bytes.TrimRight(field, " \x00"))
	score, status := ParseScore(text)
	if status != ScoreValid {
		return 0, fmt.Errorf("score field %q: %s", text, status)
	}

	return score, nil
}
