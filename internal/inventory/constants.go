package inventory

// Error message format strings
const (
	ErrMsgBeginTxFailed = "failed to begin inventory transaction: %w"
	ErrMsgApplyFailed   = "failed to apply inventory changes: %w"
	ErrMsgCommitFailed  = "failed to commit inventory transaction: %w"
)

// Log messages
const (
	LogMsgItemsAdded   = "Items added to inventory"
	LogMsgItemsRemoved = "Items removed from inventory"
	LogMsgForeignStack = "Attempt to remove from a stack owned by another user"
)
