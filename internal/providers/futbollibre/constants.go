package futbollibre

import "time"

const (
	// ProviderName identifies this adapter in logs and metrics.
	ProviderName = "futbollibre"

	// idPrefix namespaces match IDs so they cannot collide with the other
	// source. The feed carries a stable numeric item id, so IDs follow the
	// {prefix}-{slug(title)}-{numericID} shape.
	idPrefix = "s1"

	// The upstream is a single-region feed publishing wall-clock times at
	// a fixed offset, not a named zone with DST rules.
	defaultUTCOffset = -3 * time.Hour

	dateTimeLayout = "2006-01-02 15:04:05"

	fallbackTitle       = "Unknown Match"
	fallbackLeague      = "General"
	fallbackChannelName = "Server"
)
