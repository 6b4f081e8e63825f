package store

import (
	"sync"

	"github.com/akave-ai/eventcap/internal/model"
)

// Store is the in-memory request log. Entries are only ever appended or
// cleared as a whole; the slice itself never leaves the lock.
type Store struct {
	mu      sync.Mutex
	entries []model.LogEntry
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Append adds entry to the end of the log.
func (s *Store) Append(entry model.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// Entries returns a copy of the log in capture order (oldest first).
func (s *Store) Entries() []model.LogEntry {
	s.mu.Lock()
	out := make([]model.LogEntry, len(s.entries))
	copy(out, s.entries)
	s.mu.Unlock()
	return out
}

// Snapshot returns a copy of the log ordered newest first. The copy is taken
// under the lock; reversing happens after it is released.
func (s *Store) Snapshot() []model.LogEntry {
	return NewestFirst(s.Entries())
}

// Clear empties the log.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Len returns the number of entries currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
