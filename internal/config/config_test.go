package config

import (
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envPort, envProvider, envPollInterval, envFetchTimeout,
		envFutbolLibreURL, envFutbolLibreTZ, envSportsEventsURL,
		envMetricsPort, envMetricsOn, envOtelEndpoint, envOtelService, envOtelInsecure,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.Provider != "live" {
		t.Fatalf("unexpected provider %q", cfg.Provider)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.FetchTimeout)
	}
	if cfg.Feeds.FutbolLibre.UTCOffsetHours != -3 {
		t.Fatalf("unexpected feed offset %d", cfg.Feeds.FutbolLibre.UTCOffsetHours)
	}
	if cfg.Feeds.FutbolLibre.URL == "" || cfg.Feeds.SportsEvents.URL == "" {
		t.Fatal("expected default feed URLs")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envPort, "8080")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envPollInterval, "90s")
	t.Setenv(envFetchTimeout, "3s")
	t.Setenv(envFutbolLibreURL, "http://feeds.test/a.json")
	t.Setenv(envFutbolLibreTZ, "-5")
	t.Setenv(envSportsEventsURL, "http://feeds.test/b.json")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "8080" || cfg.Provider != "fixture" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.PollInterval != 90*time.Second || cfg.FetchTimeout != 3*time.Second {
		t.Fatalf("unexpected durations %v %v", cfg.PollInterval, cfg.FetchTimeout)
	}
	if cfg.Feeds.FutbolLibre.URL != "http://feeds.test/a.json" {
		t.Fatalf("unexpected feed url %q", cfg.Feeds.FutbolLibre.URL)
	}
	if cfg.Feeds.FutbolLibre.UTCOffsetHours != -5 {
		t.Fatalf("expected negative offsets accepted, got %d", cfg.Feeds.FutbolLibre.UTCOffsetHours)
	}
	if cfg.Feeds.SportsEvents.URL != "http://feeds.test/b.json" {
		t.Fatalf("unexpected feed url %q", cfg.Feeds.SportsEvents.URL)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestLoadIgnoresInvalidDurations(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envPollInterval, "soon")
	t.Setenv(envFetchTimeout, "-2s")

	cfg := Load()

	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected default for unparseable interval, got %v", cfg.PollInterval)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("expected default for non-positive timeout, got %v", cfg.FetchTimeout)
	}
}
