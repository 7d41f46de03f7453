package futbollibre

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/logging"
	"match-feed-service/internal/metrics"
	"match-feed-service/internal/providers"
	"match-feed-service/internal/timeutil"
)

// Config controls how the futbollibre client reaches the upstream feed.
type Config struct {
	URL        string
	HTTPClient *http.Client
	// UTCOffset is the feed's fixed home-timezone offset. Zero means the
	// default (UTC-3).
	UTCOffset time.Duration
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the futbollibre schedule and maps it to canonical matches.
type Client struct {
	url        string
	httpClient httpDoer
	loc        *time.Location
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a futbollibre client with the provided configuration.
func NewClient(cfg Config) *Client {
	offset := cfg.UTCOffset
	if offset == 0 {
		offset = defaultUTCOffset
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        cfg.URL,
		httpClient: httpClient,
		loc:        time.FixedZone("feed", int(offset/time.Second)),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// FetchMatches retrieves the feed document and normalizes every record it
// can. A single malformed record is dropped and logged; only a document
// level failure returns an error.
func (c *Client) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("futbollibre: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("futbollibre: fetch: %w", err)
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
		return nil, fmt.Errorf("futbollibre: decode: %w", err)
	}

	now := c.now().UTC()
	matches := make([]domain.Match, 0, len(doc.Data))
	for _, rec := range doc.Data {
		m, err := mapRecord(rec, c.loc)
		if err != nil {
			logging.Warn(c.logger, "skipping malformed record",
				slog.String(logging.FieldProvider, ProviderName),
				slog.Int("upstream_id", rec.ID),
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

	return matches, nil
}
