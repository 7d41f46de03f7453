package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"match-feed-service/internal/domain"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a MatchProvider with retry/backoff behavior.
type retryingProvider struct {
	inner           MatchProvider
	logger          *slog.Logger
	name            string
	maxAttempts     int
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner MatchProvider, logger *slog.Logger, name string, maxAttempts int, initialInterval time.Duration) MatchProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		name:            name,
		maxAttempts:     maxAttempts,
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	bo.RandomizationFactor = 0

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		matches, err := r.inner.FetchMatches(ctx)
		if err == nil {
			return matches, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		delay := bo.NextBackOff()
		r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, msg, args...)
}
