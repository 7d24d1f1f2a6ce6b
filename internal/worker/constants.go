package worker

import "time"

// Job names
const (
	JobNameCatalogRefresh  = "mission-catalog-refresh"
	JobNameActivityCleanup = "activity-cleanup"
)

// Scheduler defaults
const (
	DefaultJobTimeout  = 2 * time.Minute
	DefaultStopTimeout = 10 * time.Second
)

// Log messages
const (
	LogMsgJobRegistered     = "Scheduled job registered"
	LogMsgJobStarting       = "Scheduled job starting"
	LogMsgJobFailed         = "Scheduled job failed"
	LogMsgJobCompleted      = "Scheduled job completed"
	LogMsgSchedulerStarted  = "Scheduler started"
	LogMsgSchedulerShutdown = "Shutting down scheduler"
)

// Error messages
const (
	ErrMsgCreateScheduler = "failed to create scheduler: %w"
	ErrMsgRegisterJob     = "failed to register job %s: %w"
	ErrMsgInvalidInterval = "job %s: interval must be positive, got %s"
	ErrMsgUnknownJob      = "unknown job: %s"
)
