package domain

import (
	"time"

	"match-feed-service/internal/timeutil"
)

// Store defines the contract for holding the current match snapshot.
type Store interface {
	ListMatches() []Match
	GetMatch(id string) (Match, bool)
	SetMatches(matches []Match)
}

// Service coordinates reads over a Store. IsLive is recomputed against the
// wall clock on every read so the flag never outlives the refresh cycle
// that produced it.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Matches returns the current snapshot with live state freshly classified.
func (s *Service) Matches() []Match {
	matches := s.store.ListMatches()
	now := s.now()
	for i := range matches {
		matches[i].IsLive = timeutil.IsLive(matches[i].Kickoff, now)
	}
	return matches
}

// MatchByID returns a single match if present, with live state freshly
// classified.
func (s *Service) MatchByID(id string) (Match, bool) {
	m, ok := s.store.GetMatch(id)
	if !ok {
		return Match{}, false
	}
	m.IsLive = timeutil.IsLive(m.Kickoff, s.now())
	return m, true
}

// ReplaceMatches swaps the stored matches with a new snapshot.
func (s *Service) ReplaceMatches(matches []Match) {
	s.store.SetMatches(matches)
}
