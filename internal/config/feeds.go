package config

// FutbolLibreConfig points at the date+local-offset feed (source A).
type FutbolLibreConfig struct {
	URL string
	// UTCOffsetHours is the feed's fixed home-timezone offset. It is a
	// plain numeric offset on purpose: the upstream publishes no zone name
	// and applies no DST rules.
	UTCOffsetHours int
}

// SportsEventsConfig points at the weekly day-bucketed feed (source B).
// Its clock times are already UTC.
type SportsEventsConfig struct {
	URL string
}

// FeedsConfig groups the upstream feed endpoints.
type FeedsConfig struct {
	FutbolLibre  FutbolLibreConfig
	SportsEvents SportsEventsConfig
}

func loadFeeds() FeedsConfig {
	return FeedsConfig{
		FutbolLibre: FutbolLibreConfig{
			URL:            envOrDefault(envFutbolLibreURL, defaultFutbolLibreURL),
			UTCOffsetHours: intEnvOrDefault(envFutbolLibreTZ, defaultFutbolLibreOffsetHours),
		},
		SportsEvents: SportsEventsConfig{
			URL: envOrDefault(envSportsEventsURL, defaultSportsEventsURL),
		},
	}
}
