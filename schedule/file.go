package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const logFileName = "schedule_log.json"

// FileStore appends entries to <dir>/schedule_log.json, a pretty-printed
// JSON array. An unreadable or corrupt existing file restarts the array
// rather than failing the append. A mutex serializes the read-modify-write
// cycle across concurrent callers.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first append.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the log file path.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, logFileName)
}

// Append adds one entry to the log file.
func (s *FileStore) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating log dir %s: %w", s.dir, err)
	}
	entries := s.read()
	entries = append(entries, e)

	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schedule log: %w", err)
	}
	if err := os.WriteFile(s.Path(), raw, 0o644); err != nil {
		return fmt.Errorf("writing schedule log: %w", err)
	}
	return nil
}

// All returns the logged entries, newest first.
func (s *FileStore) All() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.read()
	reversed := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}
	return reversed, nil
}

// read loads the current array, treating a missing or corrupt file as empty.
func (s *FileStore) read() []Entry {
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}
