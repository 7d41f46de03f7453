package domain

import "time"

// Source identifies which upstream feed produced a match. Provenance is an
// explicit field; it must never be inferred from the ID prefix.
type Source string

const (
	SourceFutbolLibre  Source = "futbollibre"
	SourceSportsEvents Source = "sportsevents"
)

// Channel is a single stream endpoint for a match. Order is
// display-significant: consumers pick a server by index.
type Channel struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Match is the canonical match shape exposed by the service. Matches are
// rebuilt from scratch every fetch cycle and treated as immutable values.
// Date and Time keep the source-local representation for display; Kickoff
// is the canonical UTC instant and the only field used for ordering and
// live classification.
type Match struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	League   string    `json:"league"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Kickoff  time.Time `json:"timestamp"`
	IsLive   bool      `json:"isLive"`
	Source   Source    `json:"source"`
	Channels []Channel `json:"channels"`
}

// ListResponse is the payload returned by /matches. It mirrors the
// refresh state the poller maintains: a sorted match list, whether the
// first cycle is still pending, and the last total-failure error if any.
type ListResponse struct {
	Matches []Match `json:"matches"`
	Loading bool    `json:"loading"`
	Error   string  `json:"error,omitempty"`
}
