package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envPollInterval    = "POLL_INTERVAL"
	envFetchTimeout    = "FETCH_TIMEOUT"
	envFutbolLibreURL  = "FUTBOLLIBRE_URL"
	envFutbolLibreTZ   = "FUTBOLLIBRE_UTC_OFFSET_HOURS"
	envSportsEventsURL = "SPORTSEVENTS_URL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "live"
	// Upstream feeds are static JSON documents refreshed every few minutes;
	// polling faster than this only re-reads identical content.
	defaultPollInterval = 5 * Duration(time.Minute)
	// Per-source fetch timeout so a hung upstream cannot stall the cycle.
	defaultFetchTimeout = 10 * Duration(time.Second)
	defaultMetricsPort  = "9090"

	defaultFutbolLibreURL = "https://raw.githubusercontent.com/albinchristo04/ptv/refs/heads/main/futbollibre.json"
	// The futbollibre feed publishes wall-clock times in its home timezone,
	// a fixed UTC-3 offset with no DST rules.
	defaultFutbolLibreOffsetHours = -3
	defaultSportsEventsURL        = "https://raw.githubusercontent.com/albinchristo04/mayiru/refs/heads/main/sports_events.json"
)
