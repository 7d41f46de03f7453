package providers

import (
	"context"

	"match-feed-service/internal/domain"
)

// MatchProvider defines how one upstream feed is fetched and normalized
// into canonical matches. Implementations skip individual malformed
// records and prune stale kickoffs themselves; a returned error means the
// whole document was unreachable or undecodable this cycle.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]domain.Match, error)
}
