package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of old log files kept before a new one is opened
	LogFileRetentionCount = 9
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingQuestBoard  = "Starting QuestBoard"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
	LogMsgCacheSelected       = "Cache backend selected"
	LogMsgGeneratedDevSecret  = "SESSION_SECRET not set, using a random per-process secret; sessions will not survive restarts"
	LogMsgJobsRegistered      = "Background jobs registered"
	LogMsgCatalogWarmFailed   = "Initial mission catalog load failed, will retry on schedule"
)

// Error messages
const (
	ErrMsgCreateLogsDir  = "failed to create logs directory: %w"
	ErrMsgOpenLogFile    = "failed to open log file: %w"
	ErrMsgConnectCache   = "failed to connect cache: %w"
	ErrMsgCreateTokens   = "failed to create session token manager: %w"
	ErrMsgRegisterJobs   = "failed to register background jobs: %w"
	ErrMsgCreateSchedule = "failed to create scheduler: %w"
)

// =============================================================================
// Runtime defaults
// =============================================================================

const (
	// CatalogWarmTimeout bounds the catalog load performed at startup
	CatalogWarmTimeout = 10 * time.Second

	// JobTimeout bounds a single run of a background job
	JobTimeout = 5 * time.Minute
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgSchedulerShutdownFail = "Scheduler shutdown failed"
	LogMsgCacheCloseFailed      = "Cache close failed"
	LogMsgClosingDatabase       = "Closing database pool"
)
