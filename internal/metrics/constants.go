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

// Business metric names
const (
	MetricNameDropsAttributed           = "drops_attributed_total"
	MetricNameDropsDiscarded            = "drops_discarded_total"
	MetricNameResourcesCredited         = "resources_credited_total"
	MetricNameBuildingsUpgraded         = "buildings_upgraded_total"
	MetricNameBuildingsDowngraded       = "buildings_downgraded_total"
	MetricNameDisplayRefreshes          = "display_refreshes_total"
	MetricNameDisplayRefreshesThrottled = "display_refreshes_throttled_total"
	MetricNameDiscordCommands           = "discord_commands_total"
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

// Business metric help text
const (
	HelpTextDropsAttributed           = "Total number of loot drops credited to a team"
	HelpTextDropsDiscarded            = "Total number of loot drops discarded, by reason"
	HelpTextResourcesCredited         = "Total resource quantity credited, by category"
	HelpTextBuildingsUpgraded         = "Total number of building upgrades"
	HelpTextBuildingsDowngraded       = "Total number of building downgrades"
	HelpTextDisplayRefreshes          = "Total number of team display refreshes performed"
	HelpTextDisplayRefreshesThrottled = "Total number of team display refreshes suppressed by throttling"
	HelpTextDiscordCommands           = "Total number of Discord slash commands handled"
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
	LabelTeam     = "team"
	LabelReason   = "reason"
	LabelCategory = "category"
	LabelBuilding = "building"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
