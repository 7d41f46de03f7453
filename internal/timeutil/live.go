package timeutil

import "time"

const (
	// LiveLeadIn is how long before the stated kickoff a match already
	// counts as live (pre-match coverage).
	LiveLeadIn = 15 * time.Minute

	// LiveRunTime is how long after kickoff a match still counts as live
	// (full match duration plus stoppage).
	LiveRunTime = 150 * time.Minute

	// StaleAfter is the age past kickoff at which a match is pruned from
	// results entirely.
	StaleAfter = 3 * time.Hour
)

// IsLive reports whether a match kicking off at instant is inside its live
// window at now. The window is [-LiveLeadIn, +LiveRunTime] around kickoff.
func IsLive(instant, now time.Time) bool {
	diff := now.Sub(instant)
	return diff >= -LiveLeadIn && diff <= LiveRunTime
}

// HasEnded reports whether the live window has fully passed. IsLive and
// HasEnded are mutually exclusive for any pair of instants.
func HasEnded(instant, now time.Time) bool {
	return now.Sub(instant) > LiveRunTime
}

// IsStale reports whether a kickoff is old enough to prune from results.
func IsStale(instant, now time.Time) bool {
	return now.Sub(instant) > StaleAfter
}
