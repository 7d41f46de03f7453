package store

import (
	"sync"

	"match-feed-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of matches in memory. The
// aggregator hands over a sorted list each cycle and that order is
// preserved on reads; lookups by ID go through a side index.
type MemoryStore struct {
	mu      sync.RWMutex
	matches []domain.Match
	byID    map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// ListMatches returns a copy of the current matches in stored order.
func (s *MemoryStore) ListMatches() []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Match, len(s.matches))
	copy(result, s.matches)
	return result
}

// GetMatch retrieves a match by ID.
func (s *MemoryStore) GetMatch(id string) (domain.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return domain.Match{}, false
	}
	return s.matches[idx], true
}

// SetMatches replaces the existing matches with a new snapshot.
func (s *MemoryStore) SetMatches(matches []domain.Match) {
	snapshot := make([]domain.Match, len(matches))
	copy(snapshot, matches)
	index := make(map[string]int, len(snapshot))
	for i, m := range snapshot {
		index[m.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = snapshot
	s.byID = index
}
