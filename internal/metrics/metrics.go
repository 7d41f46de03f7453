package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	droppedRecords  map[string]int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed fetches.
// It is intentionally simple so tests can assert against it directly; the
// optional otel instruments mirror everything to the configured exporters.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a feed fetch and stores the
// last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordDroppedRecord tracks a single feed record excluded during
// normalization, bucketed by reason.
func (r *Recorder) RecordDroppedRecord(provider, reason string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.droppedRecords[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDroppedRecord(provider, reason)
	}
}

// RecordRefreshCycle tracks aggregator refresh cycles and total faults.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	DroppedRecords  map[string]int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{DroppedRecords: map[string]int{}}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{DroppedRecords: map[string]int{}}
	stats, ok := r.stats[provider]
	if !ok {
		return snap
	}
	snap.Calls = stats.calls
	snap.Errors = stats.errors
	snap.LastCallLatency = stats.lastCallLatency
	for reason, n := range stats.droppedRecords {
		snap.DroppedRecords[reason] = n
	}
	return snap
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// DroppedRecords returns how many records were dropped for a provider and
// reason.
func (r *Recorder) DroppedRecords(provider, reason string) int {
	return r.Snapshot(provider).DroppedRecords[reason]
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{droppedRecords: make(map[string]int)}
		r.stats[provider] = stats
	}
	return stats
}
