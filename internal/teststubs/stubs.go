package teststubs

import (
	"context"
	"sync/atomic"

	"match-feed-service/internal/domain"
)

// StubProvider is a test double for providers.MatchProvider.
type StubProvider struct {
	Matches []domain.Match
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchMatches returns the configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Matches, s.Err
}

// StubFetcher is a test double for poller.Fetcher.
type StubFetcher struct {
	Matches []domain.Match
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchAll returns the configured matches and error while tracking calls.
func (s *StubFetcher) FetchAll(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Matches, s.Err
}

// StubWriter is a test double for poller.SnapshotWriter.
type StubWriter struct {
	SetCalls int
	Last     []domain.Match
}

// SetMatches records the snapshot for verification in tests.
func (w *StubWriter) SetMatches(matches []domain.Match) {
	w.SetCalls++
	w.Last = matches
}
