package sportsevents

// Upstream document shape: weekday-name buckets of events, anchored by a
// single top-level last-updated instant.
type document struct {
	LastUpdated string             `json:"last_updated"`
	Events      map[string][]event `json:"events"`
}

type event struct {
	Event   string   `json:"event"`
	Time    string   `json:"time"`
	Streams []string `json:"streams"`
}
