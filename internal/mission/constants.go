package mission

import "time"

// Catalog cache settings
const (
	CatalogCacheKey   = "missions:catalog:v1"
	DefaultCatalogTTL = 10 * time.Minute
)

// ActivityDescriptionFormat describes a completion in the activity feed
const ActivityDescriptionFormat = "Completed mission: %s"

// Error message format strings
const (
	ErrMsgBeginTxFailed     = "failed to begin mission transaction: %w"
	ErrMsgApplyFailed       = "failed to apply mission completion: %w"
	ErrMsgCommitFailed      = "failed to commit mission completion: %w"
	ErrMsgLoadCatalogFailed = "failed to load mission catalog: %w"
	ErrMsgLoadStatesFailed  = "failed to load mission states: %w"
)

// Log messages
const (
	LogMsgMissionCompleted   = "Mission completed"
	LogMsgMissionOnCooldown  = "Mission completion rejected: on cooldown"
	LogMsgCompletionConflict = "Mission completion lost a concurrent race"
	LogMsgCompletionFailed   = "Mission completion failed"
	LogMsgCatalogCacheError  = "Mission catalog cache unavailable, reading from store"
	LogMsgCatalogRefreshed   = "Mission catalog refreshed"
)
