package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"match-feed-service/internal/aggregator"
	"match-feed-service/internal/config"
	"match-feed-service/internal/domain"
	"match-feed-service/internal/metrics"
	"match-feed-service/internal/teststubs"
	"match-feed-service/internal/testutil"
)

type stubHTTPServer struct {
	mu           sync.Mutex
	listenCalls  int
	shutdowns    int
	listenErr    error
	listenClosed chan struct{}
	handler      http.Handler
}

func newStubHTTPServer(handler http.Handler) *stubHTTPServer {
	return &stubHTTPServer{listenClosed: make(chan struct{}), handler: handler}
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	err := s.listenErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	<-s.listenClosed
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdowns++
	select {
	case <-s.listenClosed:
	default:
		close(s.listenClosed)
	}
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func (s *stubHTTPServer) stats() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls, s.shutdowns
}

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		Provider:     "fixture",
		PollInterval: time.Hour,
		FetchTimeout: time.Second,
	}
}

func TestSourceFactoryFixtureProvider(t *testing.T) {
	f := newSourceFactory(nil, nil)
	cfg := testConfig()
	cfg.Provider = "fixture"

	sources := f.build(cfg)
	if len(sources) != 1 || sources[0].Name != "fixture" {
		t.Fatalf("expected a single fixture source, got %+v", sources)
	}
	if sources[0].Provider == nil {
		t.Fatal("expected a wired provider")
	}
}

func TestSourceFactoryLiveProviders(t *testing.T) {
	f := newSourceFactory(nil, metrics.NewRecorder())
	cfg := testConfig()
	cfg.Provider = "live"
	cfg.Feeds.FutbolLibre.URL = "http://feeds.test/a.json"
	cfg.Feeds.FutbolLibre.UTCOffsetHours = -3
	cfg.Feeds.SportsEvents.URL = "http://feeds.test/b.json"

	sources := f.build(cfg)
	if len(sources) != 2 {
		t.Fatalf("expected two live sources, got %+v", sources)
	}
	if sources[0].Name != "futbollibre" || sources[1].Name != "sportsevents" {
		t.Fatalf("unexpected source names: %q, %q", sources[0].Name, sources[1].Name)
	}
	for _, src := range sources {
		if src.Provider == nil {
			t.Fatalf("expected a wired provider for %q", src.Name)
		}
	}
}

func TestRunStartsAndShutsDownCleanly(t *testing.T) {
	provider := &teststubs.StubProvider{
		Matches: []domain.Match{{
			ID:      "s1-test-match-1",
			Title:   "Test Match",
			Kickoff: testutil.MustParseRFC3339("2025-06-14T20:00:00Z").Add(time.Hour),
		}},
		Notify: make(chan struct{}),
	}
	sources := []aggregator.Source{{Name: "stub", Provider: provider}}

	srv := newServerWithSources(testConfig(), nil, metrics.NewRecorder(), nil, nil, sources)
	stub := newStubHTTPServer(srv.httpServer.Handler())
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-provider.Notify:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an initial fetch shortly after Run")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected Run to return after cancellation")
	}

	listens, shutdowns := stub.stats()
	if listens != 1 || shutdowns != 1 {
		t.Fatalf("expected one listen and one shutdown, got %d and %d", listens, shutdowns)
	}
}

func TestRunServesMatchesOverHTTP(t *testing.T) {
	provider := &teststubs.StubProvider{
		Matches: []domain.Match{{
			ID:      "s1-test-match-1",
			Title:   "Test Match",
			Kickoff: time.Now().UTC().Add(time.Hour),
		}},
		Notify: make(chan struct{}),
	}
	sources := []aggregator.Source{{Name: "stub", Provider: provider}}

	srv := newServerWithSources(testConfig(), nil, metrics.NewRecorder(), nil, nil, sources)
	stub := newStubHTTPServer(srv.httpServer.Handler())
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	<-provider.Notify
	// The snapshot write follows the notify signal; poll briefly for it.
	deadline := time.Now().Add(2 * time.Second)
	for {
		rr := httptest.NewRecorder()
		stub.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/matches/s1-test-match-1", nil))
		if rr.Code == http.StatusOK {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected the stored match to be served, last status %d", rr.Code)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServerErrorTriggersStop(t *testing.T) {
	sources := []aggregator.Source{{Name: "stub", Provider: &teststubs.StubProvider{}}}
	srv := newServerWithSources(testConfig(), nil, metrics.NewRecorder(), nil, nil, sources)

	stub := newStubHTTPServer(srv.httpServer.Handler())
	stub.listenErr = http.ErrAbortHandler
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// The listen failure must cancel the run context and unwind Run.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("expected Run to stop after a server failure")
	}
}

func TestNewBuildsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false

	srv := New(cfg, nil)
	if srv == nil || srv.httpServer == nil || srv.poller == nil {
		t.Fatal("expected a fully wired server")
	}
	if srv.metricsServer != nil {
		t.Fatal("expected no metrics server when disabled")
	}
}
