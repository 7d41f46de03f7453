package sportsevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/logging"
	"match-feed-service/internal/metrics"
	"match-feed-service/internal/providers"
	"match-feed-service/internal/timeutil"
)

// Config controls how the sportsevents client reaches the upstream feed.
type Config struct {
	URL        string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the weekly sports_events document and maps it to
// canonical matches.
type Client struct {
	url        string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a sportsevents client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        cfg.URL,
		httpClient: httpClient,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// FetchMatches retrieves the feed document, resolves each weekday bucket to
// a calendar date anchored at last_updated, and normalizes every event it
// can. Unknown weekday keys and malformed events are dropped individually;
// a missing or unparseable last_updated fails the whole document since no
// bucket can be dated without it.
func (c *Client) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("sportsevents: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sportsevents: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FeedError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("sportsevents: decode: %w", err)
	}

	lastUpdated, err := time.Parse(time.RFC3339, doc.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("sportsevents: parse last_updated %q: %w", doc.LastUpdated, err)
	}

	// Buckets arrive as a JSON object; iterate keys in a fixed order so
	// repeated fetches of identical content produce identical output.
	dayKeys := make([]string, 0, len(doc.Events))
	for key := range doc.Events {
		dayKeys = append(dayKeys, key)
	}
	sort.Strings(dayKeys)

	now := c.now().UTC()
	matches := make([]domain.Match, 0)
	for _, dayKey := range dayKeys {
		bucketDay, ok := resolveBucketDate(lastUpdated, dayKey)
		if !ok {
			logging.Warn(c.logger, "skipping unknown weekday bucket",
				slog.String(logging.FieldProvider, ProviderName),
				slog.String("bucket", dayKey),
			)
			continue
		}
		date := timeutil.FormatDate(bucketDay)

		for _, ev := range doc.Events[dayKey] {
			m, err := mapEvent(ev, date)
			if err != nil {
				logging.Warn(c.logger, "skipping malformed event",
					slog.String(logging.FieldProvider, ProviderName),
					slog.String("bucket", dayKey),
					"error", err,
				)
				c.metrics.RecordDroppedRecord(ProviderName, metrics.DropReasonMalformed)
				continue
			}
			if timeutil.IsStale(m.Kickoff, now) {
				c.metrics.RecordDroppedRecord(ProviderName, metrics.DropReasonStale)
				continue
			}
			m.IsLive = timeutil.IsLive(m.Kickoff, now)
			matches = append(matches, m)
		}
	}

	return matches, nil
}
