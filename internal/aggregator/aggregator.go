// Package aggregator merges the normalized output of every configured feed
// into one consistent, time-ordered match list.
package aggregator

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/logging"
	"match-feed-service/internal/metrics"
	"match-feed-service/internal/providers"
)

// Source pairs a provider with its name for logs and metrics.
type Source struct {
	Name     string
	Provider providers.MatchProvider
}

// Aggregator fans out to all sources concurrently and merges the results.
type Aggregator struct {
	sources []Source
	logger  *slog.Logger
	metrics *metrics.Recorder
	timeout time.Duration
}

// New constructs an Aggregator. timeout bounds each source fetch; <= 0
// means no per-source deadline beyond the caller's context.
func New(sources []Source, logger *slog.Logger, recorder *metrics.Recorder, timeout time.Duration) *Aggregator {
	return &Aggregator{
		sources: sources,
		logger:  logger,
		metrics: recorder,
		timeout: timeout,
	}
}

// FetchAll fetches every source concurrently and returns the concatenated
// results sorted ascending by kickoff, stable for ties. A failed source
// contributes an empty list for this cycle so the other sources' matches
// survive. The returned error is non-nil only when every source failed;
// partial results never carry an error.
func (a *Aggregator) FetchAll(ctx context.Context) ([]domain.Match, error) {
	results := make([][]domain.Match, len(a.sources))
	errs := make([]error, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()

			fetchCtx := ctx
			if a.timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, a.timeout)
				defer cancel()
			}

			if src.Provider == nil {
				errs[i] = providers.ErrProviderUnavailable
				return
			}

			start := time.Now()
			matches, err := src.Provider.FetchMatches(fetchCtx)
			a.metrics.RecordProviderAttempt(src.Name, time.Since(start), err)
			if err != nil {
				logging.Error(a.logger, "source fetch failed", err,
					slog.String(logging.FieldProvider, src.Name),
				)
				errs[i] = err
				return
			}
			results[i] = matches
		}(i, src)
	}
	wg.Wait()

	merged := make([]domain.Match, 0)
	failures := 0
	for i := range results {
		if errs[i] != nil {
			failures++
			continue
		}
		merged = append(merged, results[i]...)
	}

	// Stable sort keeps source-ingestion order for equal kickoffs.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Kickoff.Before(merged[j].Kickoff)
	})

	if len(a.sources) > 0 && failures == len(a.sources) {
		return merged, errors.Join(errs...)
	}
	return merged, nil
}
