package store

// ScoreStoreConfig holds configuration for the score store
type ScoreStoreConfig struct {
	FilePath   string // Path to the scores file
	Lock       bool   // Hold an advisory lock across each read-modify-write
	SyncWrites bool   // Fsync after every record write
}

// Match describes a record located by a scan
type Match struct {
	EndOffset int64 // Byte offset immediately after the matched record
	Score     int32 // Current stored score
}

// Errors
var (
	ErrNotOpen         = &StoreError{"store is not open"}
	ErrInvalidName     = &StoreError{"invalid player name"}
	ErrOpenFailure     = &StoreError{"cannot open scores file"}
	ErrCorruptRecord   = &StoreError{"corrupt record detected"}
	ErrScoreOutOfRange = &StoreError{"adjusted score out of range"}
	ErrWriteFailure    = &StoreError{"record write failed"}
	ErrSeekFailure     = &StoreError{"seek failed"}
)

// StoreError represents a score store error
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
