package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/teststubs"
	"match-feed-service/internal/testutil"
)

func sampleMatches() []domain.Match {
	return []domain.Match{
		{ID: "m1", Title: "One", Kickoff: testutil.MustParseRFC3339("2025-06-14T20:00:00Z")},
		{ID: "m2", Title: "Two", Kickoff: testutil.MustParseRFC3339("2025-06-14T22:00:00Z")},
	}
}

func TestNewStartsInLoadingState(t *testing.T) {
	p := New(&teststubs.StubFetcher{}, &teststubs.StubWriter{}, nil, nil, time.Minute)

	state := p.State()
	if !state.Loading {
		t.Fatal("expected Loading before the first cycle")
	}
	if state.Matches == nil || len(state.Matches) != 0 {
		t.Fatalf("expected empty non-nil match list, got %+v", state.Matches)
	}
	if state.Err != "" {
		t.Fatalf("expected no error, got %q", state.Err)
	}
	if p.Status().IsReady() {
		t.Fatal("expected not ready before the first success")
	}
}

func TestFetchOnceSuccessUpdatesStateAndWriter(t *testing.T) {
	fetcher := &teststubs.StubFetcher{Matches: sampleMatches()}
	writer := &teststubs.StubWriter{}
	p := New(fetcher, writer, nil, nil, time.Minute)

	p.fetchOnce(context.Background())

	state := p.State()
	if state.Loading {
		t.Fatal("expected Loading cleared after a successful cycle")
	}
	if len(state.Matches) != 2 || state.Err != "" {
		t.Fatalf("unexpected state: %+v", state)
	}
	if writer.SetCalls != 1 || len(writer.Last) != 2 {
		t.Fatalf("expected snapshot written once, got %d calls", writer.SetCalls)
	}
	if !p.Status().IsReady() {
		t.Fatal("expected ready after a success")
	}
}

func TestFetchOnceFailureKeepsPreviousMatches(t *testing.T) {
	fetcher := &teststubs.StubFetcher{Matches: sampleMatches()}
	writer := &teststubs.StubWriter{}
	p := New(fetcher, writer, nil, nil, time.Minute)

	p.fetchOnce(context.Background())

	fetcher.Matches = nil
	fetcher.Err = errors.New("all feeds down")
	p.fetchOnce(context.Background())

	state := p.State()
	if len(state.Matches) != 2 {
		t.Fatalf("expected previous matches retained, got %+v", state.Matches)
	}
	if state.Err != "all feeds down" {
		t.Fatalf("expected error surfaced, got %q", state.Err)
	}
	if state.Loading {
		t.Fatal("expected Loading to stay cleared")
	}
	if writer.SetCalls != 1 {
		t.Fatalf("expected no snapshot write on failure, got %d calls", writer.SetCalls)
	}

	status := p.Status()
	if status.ConsecutiveFailures != 1 || status.LastError != "all feeds down" {
		t.Fatalf("unexpected status: %+v", status)
	}
	if !status.IsReady() {
		t.Fatal("expected still ready after a single failure")
	}
}

func TestFetchOnceRecoveryClearsError(t *testing.T) {
	fetcher := &teststubs.StubFetcher{Err: errors.New("boom")}
	p := New(fetcher, &teststubs.StubWriter{}, nil, nil, time.Minute)

	p.fetchOnce(context.Background())
	fetcher.Err = nil
	fetcher.Matches = sampleMatches()
	p.fetchOnce(context.Background())

	state := p.State()
	if state.Err != "" {
		t.Fatalf("expected error cleared after recovery, got %q", state.Err)
	}
	if p.Status().ConsecutiveFailures != 0 {
		t.Fatalf("expected failure streak reset, got %d", p.Status().ConsecutiveFailures)
	}
}

func TestStatusNotReadyAfterRepeatedFailures(t *testing.T) {
	fetcher := &teststubs.StubFetcher{Matches: sampleMatches()}
	p := New(fetcher, &teststubs.StubWriter{}, nil, nil, time.Minute)

	p.fetchOnce(context.Background())
	fetcher.Err = errors.New("boom")
	for i := 0; i < 3; i++ {
		p.fetchOnce(context.Background())
	}

	if p.Status().IsReady() {
		t.Fatal("expected not ready after three consecutive failures")
	}
}

func TestStartRunsImmediateFetch(t *testing.T) {
	fetcher := &teststubs.StubFetcher{
		Matches: sampleMatches(),
		Notify:  make(chan struct{}),
	}
	p := New(fetcher, &teststubs.StubWriter{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	select {
	case <-fetcher.Notify:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate fetch after Start")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	fetcher := &teststubs.StubFetcher{Matches: sampleMatches(), Notify: make(chan struct{})}
	p := New(fetcher, &teststubs.StubWriter{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	<-fetcher.Notify
	// Give a duplicate loop a moment to run if one was started.
	time.Sleep(50 * time.Millisecond)
	if got := fetcher.Calls.Load(); got != 1 {
		t.Fatalf("expected exactly one immediate fetch, got %d", got)
	}
}

func TestStopHaltsPolling(t *testing.T) {
	fetcher := &teststubs.StubFetcher{Matches: sampleMatches(), Notify: make(chan struct{})}
	p := New(fetcher, &teststubs.StubWriter{}, nil, nil, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	<-fetcher.Notify

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop should be a no-op, got %v", err)
	}

	// A tick already buffered when Stop ran may drive one last fetch;
	// let that drain before sampling the counter.
	time.Sleep(50 * time.Millisecond)
	settled := fetcher.Calls.Load()
	time.Sleep(100 * time.Millisecond)
	if got := fetcher.Calls.Load(); got != settled {
		t.Fatalf("expected no fetches after Stop, had %d then %d", settled, got)
	}
}
