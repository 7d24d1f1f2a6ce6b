package domain

import "time"

// Activity type constants
const (
	ActivityMissionCompleted = "MISSION_COMPLETED"
)

// Activity metadata keys
const (
	MetaKeyMissionID   = "missionId"
	MetaKeyXPReward    = "xpReward"
	MetaKeyMoneyReward = "moneyReward"
	MetaKeyRewards     = "rewards"
	MetaKeyItemID      = "itemId"
	MetaKeyQuantity    = "quantity"
)

// ActivityLogEntry is an append-only record of something a user did
type ActivityLogEntry struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ActivityEntry is a log entry prepared for display
type ActivityEntry struct {
	ActivityLogEntry
	Label string `json:"label"`
}
