package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable indicates a provider was not configured or wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FeedError captures a non-OK response from an upstream feed.
type FeedError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *FeedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "feed request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsFeedError attempts to unwrap an error into a FeedError.
func AsFeedError(err error) (*FeedError, bool) {
	var feedErr *FeedError
	if errors.As(err, &feedErr) {
		return feedErr, true
	}
	return nil, false
}
