package server

import (
	"log/slog"
	"time"

	"match-feed-service/internal/aggregator"
	"match-feed-service/internal/config"
	"match-feed-service/internal/metrics"
	"match-feed-service/internal/providers"
	"match-feed-service/internal/providers/fixture"
	"match-feed-service/internal/providers/futbollibre"
	"match-feed-service/internal/providers/sportsevents"
)

// sourceFactory assembles the feed sources with shared wrappers (retry).
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) []aggregator.Source {
	if cfg.Provider == "fixture" {
		return []aggregator.Source{
			{Name: "fixture", Provider: fixture.New()},
		}
	}

	futbol := futbollibre.NewClient(futbollibre.Config{
		URL:       cfg.Feeds.FutbolLibre.URL,
		UTCOffset: time.Duration(cfg.Feeds.FutbolLibre.UTCOffsetHours) * time.Hour,
		Logger:    f.logger,
		Metrics:   f.metrics,
	})
	sports := sportsevents.NewClient(sportsevents.Config{
		URL:     cfg.Feeds.SportsEvents.URL,
		Logger:  f.logger,
		Metrics: f.metrics,
	})

	return []aggregator.Source{
		{
			Name:     futbollibre.ProviderName,
			Provider: providers.NewRetryingProvider(futbol, f.logger, futbollibre.ProviderName, 0, 0),
		},
		{
			Name:     sportsevents.ProviderName,
			Provider: providers.NewRetryingProvider(sports, f.logger, sportsevents.ProviderName, 0, 0),
		},
	}
}
