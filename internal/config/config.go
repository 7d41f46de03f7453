package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Provider     string
	PollInterval Duration
	FetchTimeout Duration
	Feeds        FeedsConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, defaultProvider),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		FetchTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		Feeds:        loadFeeds(),
		Metrics:      loadMetrics(),
	}
}
