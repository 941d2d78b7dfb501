package codec

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ScoreStatus classifies the result of parsing a score field
type ScoreStatus int

const (
	// ScoreValid means the text parsed to an in-range score
	ScoreValid ScoreStatus = iota

	// ScoreInvalid means the text is empty, starts with whitespace,
	// or carries trailing non-numeric characters
	ScoreInvalid

	// ScoreOverflow means the value exceeds ScoreMax
	ScoreOverflow

	// ScoreUnderflow means the value is below ScoreMin
	ScoreUnderflow
)

// String returns a human-readable name for the status
func (s ScoreStatus) String() string {
	switch s {
	case ScoreValid:
		return "valid"
	case ScoreInvalid:
		return "invalid score"
	case ScoreOverflow:
		return "score overflow"
	case ScoreUnderflow:
		return "score underflow"
	default:
		return "unknown score status"
	}
}

// ParseScore parses a textual score into a bounded int32. The four-way
// classification is deliberate: overflow and underflow are reported
// separately so callers can surface which bound was hit. The parse is
// performed in 64 bits so values past either int32 bound still classify
// correctly instead of wrapping.
func ParseScore(text string) (int32, ScoreStatus) {
	if text == "" {
		return 0, ScoreInvalid
	}

	first := []rune(text)[0]
	if unicode.IsSpace(first) {
		return 0, ScoreInvalid
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(text, "-") {
				return 0, ScoreUnderflow
			}
			return 0, ScoreOverflow
		}
		return 0, ScoreInvalid
	}

	if value > ScoreMax {
		return 0, ScoreOverflow
	}
	if value < ScoreMin {
		return 0, ScoreUnderflow
	}

	return int32(value), ScoreValid
}
