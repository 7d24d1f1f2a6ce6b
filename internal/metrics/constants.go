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

// Business metric names
const (
	MetricNameMissionsCompleted         = "missions_completed_total"
	MetricNameMissionCompletionFailures = "mission_completion_failures_total"
	MetricNameItemsGranted              = "items_granted_total"
	MetricNameItemsRemoved              = "items_removed_total"
	MetricNameXPAwarded                 = "xp_awarded_total"
	MetricNameMoneyAwarded              = "money_awarded_total"
	MetricNameLevelUps                  = "level_ups_total"
)

// Job metric names
const (
	MetricNameCatalogRefreshes = "mission_catalog_refreshes_total"
	MetricNameActivitiesPruned = "activities_pruned_total"
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

// Business metric help text
const (
	HelpTextMissionsCompleted         = "Total number of missions completed"
	HelpTextMissionCompletionFailures = "Total number of rejected or failed mission completions"
	HelpTextItemsGranted              = "Total number of item units added to inventories"
	HelpTextItemsRemoved              = "Total number of item units removed from inventories"
	HelpTextXPAwarded                 = "Total experience awarded by missions"
	HelpTextMoneyAwarded              = "Total money awarded by missions"
	HelpTextLevelUps                  = "Total number of mission completions that raised a level"
)

// Job metric help text
const (
	HelpTextCatalogRefreshes = "Total number of mission catalog refreshes"
	HelpTextActivitiesPruned = "Total number of activity log entries removed by retention cleanup"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
	LabelSource = "source"
)

// Sources of granted items
const (
	SourceDirect  = "direct"
	SourceMission = "mission"
)

// Failure reasons for mission completions
const (
	ReasonNotFound     = "not_found"
	ReasonCooldown     = "cooldown"
	ReasonConflict     = "conflict"
	ReasonStoreFailure = "store_failure"
	ReasonOther        = "other"
)

// Job outcomes
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
