// Package fixture serves a static set of matches for local runs and
// bootstrapping without hitting the real feeds.
package fixture

import (
	"context"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/timeutil"
)

// Provider returns a deterministic set of matches anchored at the current
// hour.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchMatches returns a deterministic set of example matches.
func (p *Provider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx

	now := p.now().UTC()
	base := now.Truncate(time.Hour)

	first := base.Add(30 * time.Minute)
	second := base.Add(3 * time.Hour)

	matches := []domain.Match{
		{
			ID:      "fixture-1",
			Title:   "Fixture United vs Example City",
			League:  "Fixture League",
			Date:    timeutil.FormatDate(first),
			Time:    first.Format(timeutil.ClockLayout),
			Kickoff: first,
			IsLive:  timeutil.IsLive(first, now),
			Source:  domain.SourceFutbolLibre,
			Channels: []domain.Channel{
				{Name: "Server", URL: "https://example.com/stream/1"},
			},
		},
		{
			ID:      "fixture-2",
			Title:   "Sample Rovers vs Demo Athletic",
			League:  "Sports Events",
			Date:    timeutil.FormatDate(second),
			Time:    second.Format(timeutil.ClockLayout),
			Kickoff: second,
			IsLive:  timeutil.IsLive(second, now),
			Source:  domain.SourceSportsEvents,
			Channels: []domain.Channel{
				{Name: "Server 1", URL: "https://example.com/stream/2"},
				{Name: "Server 2", URL: "https://example.com/stream/3"},
			},
		},
	}

	return matches, nil
}
