package sportsevents

import (
	"fmt"
	"strings"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/slug"
	"match-feed-service/internal/timeutil"
)

var weekdayIndex = map[string]int{
	"SUNDAY":    0,
	"MONDAY":    1,
	"TUESDAY":   2,
	"WEDNESDAY": 3,
	"THURSDAY":  4,
	"FRIDAY":    5,
	"SATURDAY":  6,
}

// resolveBucketDate maps a weekday-name bucket onto a concrete calendar
// day, anchored at the feed's last-updated instant (UTC). The feed only
// populates a rolling window of adjacent days, so each name resolves to
// its nearest occurrence between one day back and five days ahead.
// Buckets genuinely outside that window would be misresolved; that blind
// spot is inherent to a weekly-bucketed feed and is accepted rather than
// guessed around.
func resolveBucketDate(lastUpdated time.Time, dayName string) (time.Time, bool) {
	target, ok := weekdayIndex[strings.ToUpper(strings.TrimSpace(dayName))]
	if !ok {
		return time.Time{}, false
	}

	ref := lastUpdated.UTC()
	diff := target - int(ref.Weekday())
	if diff < -1 {
		diff += 7
	}
	if diff > 5 {
		diff -= 7
	}
	return ref.AddDate(0, 0, diff), true
}

// mapEvent normalizes one bucket event. Clock times are UTC by feed
// convention; an unparseable time fails only this event.
func mapEvent(ev event, date string) (domain.Match, error) {
	if _, err := time.Parse(timeutil.ClockLayout, ev.Time); err != nil {
		return domain.Match{}, fmt.Errorf("parse clock %q: %w", ev.Time, err)
	}
	kickoff, err := time.Parse(time.RFC3339, date+"T"+ev.Time+":00Z")
	if err != nil {
		return domain.Match{}, fmt.Errorf("parse kickoff %q %q: %w", date, ev.Time, err)
	}

	title := strings.TrimSpace(ev.Event)
	if title == "" {
		title = fallbackTitle
	}

	channels := make([]domain.Channel, 0, len(ev.Streams))
	for i, url := range ev.Streams {
		channels = append(channels, domain.Channel{
			Name: fmt.Sprintf("Server %d", i+1),
			URL:  url,
		})
	}

	return domain.Match{
		ID:       fmt.Sprintf("%s-%s-%s-%s", idPrefix, date, strings.ReplaceAll(ev.Time, ":", ""), slug.Make(title)),
		Title:    title,
		League:   leagueName,
		Date:     date,
		Time:     ev.Time,
		Kickoff:  kickoff,
		Source:   domain.SourceSportsEvents,
		Channels: channels,
	}, nil
}
