// Package leaderboard persists the bounded top-N list of past session scores.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/jaki95/music-explorer/internal/storage"
)

// ErrInvalidEntry marks a submission that cannot be recorded.
var ErrInvalidEntry = errors.New("invalid leaderboard entry")

// MaxEntries bounds the leaderboard; recording beyond the bound evicts the
// lowest score.
const MaxEntries = 5

// Entry is one persisted leaderboard result.
type Entry struct {
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// Store reads and writes the leaderboard file through a storage backend. The
// file is read fully on load and overwritten fully on save; the read-modify-
// write in Record is serialized by the store's mutex, since the backing file
// has no concurrency control of its own.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	path    string
}

// NewStore creates a leaderboard store persisting to path on the backend.
func NewStore(backend storage.Backend, path string) *Store {
	return &Store{backend: backend, path: path}
}

// Load returns the current entries, sorted by score descending. A missing
// file is an empty board, not an error.
func (s *Store) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Record appends an entry with the current timestamp, keeps the top MaxEntries
// by score and persists the truncated list. Empty names and negative scores
// are rejected with ErrInvalidEntry.
func (s *Store) Record(name string, score int) ([]Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidEntry)
	}
	if score < 0 {
		return nil, fmt.Errorf("%w: score must not be negative", ErrInvalidEntry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	entries = append(entries, Entry{
		Name:      name,
		Score:     score,
		Timestamp: time.Now().UTC(),
	})
	sortEntries(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) load() ([]Entry, error) {
	if !s.backend.FileExists(s.path) {
		return []Entry{}, nil
	}

	reader, err := s.backend.GetReader(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open leaderboard file: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard file: %w", err)
	}
	if len(data) == 0 {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse leaderboard file: %w", err)
	}

	sortEntries(entries)
	return entries, nil
}

func (s *Store) save(entries []Entry) error {
	writer, err := s.backend.GetWriter(s.path)
	if err != nil {
		return fmt.Errorf("failed to open leaderboard file for writing: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		writer.Close()
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write leaderboard file: %w", err)
	}
	return writer.Close()
}

// sortEntries orders by score descending, breaking ties by earlier timestamp.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
}
