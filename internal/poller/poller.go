package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/logging"
	"match-feed-service/internal/metrics"
)

const defaultInterval = 5 * time.Minute

// Fetcher produces the current merged match list.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]domain.Match, error)
}

// SnapshotWriter receives each successful match snapshot.
type SnapshotWriter interface {
	SetMatches(matches []domain.Match)
}

// Poller re-runs the aggregation pipeline on an interval and exposes the
// result as a subscribable state: the match list, whether the first cycle
// is still pending, and the last total-failure error.
type Poller struct {
	fetcher  Fetcher
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	stateMu sync.RWMutex
	state   State
	status  Status
}

// State is the consumer-facing refresh state. Matches is replaced
// atomically each successful cycle; a failed cycle keeps the previous
// list and sets Err instead.
type State struct {
	Matches []domain.Match
	Loading bool
	Err     string
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(fetcher Fetcher, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		fetcher:  fetcher,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		state:    State{Matches: []domain.Match{}, Loading: true},
	}
}

// Start begins polling until the context is cancelled or Stop is called.
// The first fetch runs immediately so consumers are not stuck on an empty
// list for a full interval.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop. Safe to call more than once.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// State returns the current refresh state snapshot.
func (p *Poller) State() State {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.state
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.status
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	matches, err := p.fetcher.FetchAll(ctx)
	p.metrics.RecordRefreshCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "refresh cycle failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}

	if p.writer != nil {
		p.writer.SetMatches(matches)
	}
	p.recordSuccess(matches, start)
	logging.Info(p.logger, "poller refreshed matches",
		logging.FieldCount, len(matches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(matches []domain.Match, at time.Time) {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.state = State{Matches: matches, Loading: false}
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
	// Keep the previous matches; a down cycle degrades to stale data
	// rather than an empty page.
	p.state = State{Matches: p.state.Matches, Loading: false, Err: p.status.LastError}
}
