package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/ssargent/curdle/pkg/codec"
)

// ScoreStore maintains a persistent leaderboard in a flat file of
// fixed-width records. The only mutation it supports is Adjust:
// increment a player's score by a delta, creating the record if the
// player is absent. Each call is a complete open-scan-write-close
// cycle; the file handle never outlives one adjustment.
type ScoreStore struct {
	config   ScoreStoreConfig
	fileLock *flock.Flock
	mutex    sync.Mutex
	isOpen   bool
}

// NewScoreStore creates a new score store instance
func NewScoreStore(config ScoreStoreConfig) (*ScoreStore, error) {
	if config.FilePath == "" {
		return nil, &StoreError{"scores file path is required"}
	}

	store := &ScoreStore{config: config}
	if config.Lock {
		store.fileLock = flock.New(config.FilePath + ".lock")
	}

	return store, nil
}

// Open prepares the store for use, creating the scores file and its
// parent directory if they do not exist yet.
func (s *ScoreStore) Open() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isOpen {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.config.FilePath), 0750); err != nil {
		return fmt.Errorf("create scores directory: %w", err)
	}

	file, err := os.OpenFile(s.config.FilePath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailure, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailure, err)
	}

	s.isOpen = true
	return nil
}

// Adjust increments player's score by delta, creating the record with
// score delta if the player has none. The whole read-modify-write runs
// under the advisory file lock when locking is configured, so two
// processes adjusting the same file cannot lose an update.
//
// The operation either fully succeeds or leaves the file unchanged: an
// out-of-range sum is rejected before any write, and the rewrite
// itself is a single positioned write of the full record.
func (s *ScoreStore) Adjust(player string, delta int32) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return ErrNotOpen
	}

	// Validate before any file access
	if err := codec.ValidateName(player); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	if s.fileLock != nil {
		if err := s.fileLock.Lock(); err != nil {
			return fmt.Errorf("lock scores file: %w", err)
		}
		defer func() { _ = s.fileLock.Unlock() }()
	}

	file, err := os.OpenFile(s.config.FilePath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailure, err)
	}
	defer func() { _ = file.Close() }()

	scanner := NewRecordScanner(file)
	match, found, err := scanner.FindPlayer(player)
	if err != nil {
		return err
	}

	writer := NewRecordWriter(file, s.config.SyncWrites)

	if !found {
		if int64(delta) < codec.ScoreMin {
			return fmt.Errorf("%w: initial score %d", ErrScoreOutOfRange, delta)
		}
		_, err := writer.Append(player, delta)
		return err
	}

	// Widened arithmetic so overflow is caught before narrowing
	sum := int64(match.Score) + int64(delta)
	if sum > codec.ScoreMax || sum < codec.ScoreMin {
		return fmt.Errorf("%w: %d %+d", ErrScoreOutOfRange, match.Score, delta)
	}

	return writer.WriteRecordAt(player, int32(sum), match.EndOffset-codec.RecordSize)
}

// Stats returns diagnostic information about the scores file
func (s *ScoreStore) Stats() (*StoreStats, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return nil, ErrNotOpen
	}

	info, err := os.Stat(s.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stat scores file: %w", err)
	}

	file, err := os.Open(s.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailure, err)
	}
	defer func() { _ = file.Close() }()

	records, err := NewRecordScanner(file).CountRecords()
	if err != nil {
		return nil, err
	}

	return &StoreStats{
		Records:  records,
		FileSize: info.Size(),
	}, nil
}

// Close shuts down the store
func (s *ScoreStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.isOpen = false
	return nil
}

// StoreStats holds statistics about the scores file
type StoreStats struct {
	Records  int
	FileSize int64
}
