package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScoresFileCorruptionScenarios tests how adjustments behave when the
// scores file contains content this system never writes itself
func TestScoresFileCorruptionScenarios(t *testing.T) {
	t.Run("StrayLinesAreSkipped", func(t *testing.T) {
		testStrayLinesAreSkipped(t)
	})

	t.Run("MatchedRecordWithCorruptScoreAborts", func(t *testing.T) {
		testMatchedRecordWithCorruptScoreAborts(t)
	})

	t.Run("CorruptScoreOnOtherPlayerIsIgnored", func(t *testing.T) {
		testCorruptScoreOnOtherPlayerIsIgnored(t)
	})

	t.Run("UnterminatedMatchedRecordAborts", func(t *testing.T) {
		testUnterminatedMatchedRecordAborts(t)
	})
}

func testStrayLinesAreSkipped(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "curdle_corruption")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	scoresFile := filepath.Join(tmpDir, "scores")
	seed := []byte("# this is not a record\nalice\x00\x00\x00\x00\x00100       \n")
	require.NoError(t, os.WriteFile(scoresFile, seed, 0600))

	store, err := NewScoreStore(ScoreStoreConfig{FilePath: scoresFile, SyncWrites: true})
	require.NoError(t, err)
	require.NoError(t, store.Open())
	defer store.Close()

	require.NoError(t, store.Adjust("alice", 50))

	data, err := os.ReadFile(scoresFile)
	require.NoError(t, err)

	// Stray line intact, record rewritten in place
	assert.Equal(t, "# this is not a record\nalice\x00\x00\x00\x00\x00150       \n", string(data))
}

func testMatchedRecordWithCorruptScoreAborts(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "curdle_corruption")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	scoresFile := filepath.Join(tmpDir, "scores")
	seed := []byte("alice\x00\x00\x00\x00\x0012x       \n")
	require.NoError(t, os.WriteFile(scoresFile, seed, 0600))

	store, err := NewScoreStore(ScoreStoreConfig{FilePath: scoresFile})
	require.NoError(t, err)
	require.NoError(t, store.Open())
	defer store.Close()

	err = store.Adjust("alice", 50)
	assert.True(t, errors.Is(err, ErrCorruptRecord), "expected ErrCorruptRecord, got %v", err)

	// Nothing was written
	data, err := os.ReadFile(scoresFile)
	require.NoError(t, err)
	assert.Equal(t, seed, data)
}

func testCorruptScoreOnOtherPlayerIsIgnored(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "curdle_corruption")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	scoresFile := filepath.Join(tmpDir, "scores")
	seed := []byte("bob\x00\x00\x00\x00\x00\x00\x00oops      \nalice\x00\x00\x00\x00\x00100       \n")
	require.NoError(t, os.WriteFile(scoresFile, seed, 0600))

	store, err := NewScoreStore(ScoreStoreConfig{FilePath: scoresFile, SyncWrites: true})
	require.NoError(t, err)
	require.NoError(t, store.Open())
	defer store.Close()

	// bob's score field is never decoded while searching for alice
	require.NoError(t, store.Adjust("alice", 50))

	data, err := os.ReadFile(scoresFile)
	require.NoError(t, err)
	assert.Equal(t, "bob\x00\x00\x00\x00\x00\x00\x00oops      \nalice\x00\x00\x00\x00\x00150       \n", string(data))

	// Touching bob surfaces the corruption
	err = store.Adjust("bob", 1)
	assert.True(t, errors.Is(err, ErrCorruptRecord), "expected ErrCorruptRecord, got %v", err)
}

func testUnterminatedMatchedRecordAborts(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "curdle_corruption")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	scoresFile := filepath.Join(tmpDir, "scores")
	// Exactly RecordSize bytes but no trailing newline
	seed := []byte("alice\x00\x00\x00\x00\x00100       x")
	require.NoError(t, os.WriteFile(scoresFile, seed, 0600))

	store, err := NewScoreStore(ScoreStoreConfig{FilePath: scoresFile})
	require.NoError(t, err)
	require.NoError(t, store.Open())
	defer store.Close()

	err = store.Adjust("alice", 1)
	assert.True(t, errors.Is(err, ErrCorruptRecord), "expected ErrCorruptRecord, got %v", err)
}

// TestScoreStore_ConcurrentAdjustments verifies that the advisory file
// lock serializes read-modify-write cycles from independent store
// instances, so no update is lost.
func TestScoreStore_ConcurrentAdjustments(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "curdle_concurrent")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	config := ScoreStoreConfig{
		FilePath:   filepath.Join(tmpDir, "scores"),
		Lock:       true,
		SyncWrites: true,
	}

	const (
		writers    = 4
		increments = 10
		delta      = 5
	)

	var wg sync.WaitGroup
	errCh := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			store, err := NewScoreStore(config)
			if err != nil {
				errCh <- err
				return
			}
			if err := store.Open(); err != nil {
				errCh <- err
				return
			}
			defer store.Close()

			for j := 0; j < increments; j++ {
				if err := store.Adjust("alice", delta); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	file, err := os.Open(config.FilePath)
	require.NoError(t, err)
	defer file.Close()

	match, found, err := NewRecordScanner(file).FindPlayer("alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int32(writers*increments*delta), match.Score)
}
