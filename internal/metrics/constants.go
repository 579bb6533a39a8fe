package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Fishing metric names
const (
	MetricNameCatches          = "fishing_catches_total"
	MetricNameTotalLuck        = "fishing_total_luck"
	MetricNameTimingHits       = "fishing_timing_hits_total"
	MetricNameRerolls          = "fishing_rerolls_total"
	MetricNameFallbacks        = "fishing_fallbacks_total"
	MetricNameUniqueClaims     = "fishing_unique_claims_total"
	MetricNameUniqueCollisions = "fishing_unique_collisions_total"
	MetricNameConfigReloads    = "fishing_config_reloads_total"
	MetricNameKnownUniques     = "fishing_known_unique_items"
	MetricNameClaimedUniques   = "fishing_claimed_unique_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Fishing metric help text
const (
	HelpTextCatches          = "Total number of resolved catches by category"
	HelpTextTotalLuck        = "Distribution of total luck per resolved catch"
	HelpTextTimingHits       = "Total number of timing hits by tier"
	HelpTextRerolls          = "Total number of re-rolls caused by claimed unique items"
	HelpTextFallbacks        = "Total number of catches that fell back after exhausting re-rolls"
	HelpTextUniqueClaims     = "Total number of unique items claimed for the first time"
	HelpTextUniqueCollisions = "Total number of draws of an already claimed unique item"
	HelpTextConfigReloads    = "Total number of fishing configuration reloads"
	HelpTextKnownUniques     = "Number of unique ids declared across loot tables"
	HelpTextClaimedUniques   = "Number of claimed unique items per world"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCategory = "category"
	LabelBonus    = "bonus"
	LabelForced   = "forced"
	LabelTier     = "tier"
	LabelWorld    = "world"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LuckBuckets covers the default global luck range of [-10, 10]
var LuckBuckets = []float64{-10, -5, -2, -1, 0, 1, 2, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"
