package activity

// Feed limits
const (
	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobSkipped   = "Activity cleanup disabled, skipping"
	LogMsgCleanupJobStarting  = "Starting activity log cleanup job"
	LogMsgCleanupJobFailed    = "Activity log cleanup failed"
	LogMsgCleanupJobCompleted = "Activity log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
