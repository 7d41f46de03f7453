package sportsevents

const (
	// ProviderName identifies this adapter in logs and metrics.
	ProviderName = "sportsevents"

	// idPrefix namespaces match IDs against the other source. The feed has
	// no stable upstream id, so IDs follow {prefix}-{date}-{HHMM}-{slug}:
	// date+time is near-unique per event and stable across refetches.
	idPrefix = "s2"

	// The feed publishes no competition label.
	leagueName = "Sports Events"

	fallbackTitle = "Unknown Match"
)
