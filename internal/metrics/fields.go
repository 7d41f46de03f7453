package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrReason   = "reason"
)

// Reasons a feed record can be dropped during normalization.
const (
	DropReasonMalformed = "malformed"
	DropReasonStale     = "stale"
)
