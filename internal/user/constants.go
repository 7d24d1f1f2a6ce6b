package user

import "time"

// Dashboard sizes
const (
	DashboardActivityLimit = 5
	DashboardPlayerLimit   = 10
)

// Presence settings
const (
	PresenceTTL       = 5 * time.Minute
	PresenceKeyPrefix = "presence:"
)

// DefaultNamePrefix names users whose identity carries no display name
const DefaultNamePrefix = "Player-"

// Log messages
const (
	LogMsgUserRegistered = "User registered from session"
	LogMsgPresenceFailed = "Failed to record presence"
	LogMsgPresenceLookup = "Presence lookup failed, reporting offline"
	LogMsgActivityFailed = "Failed to load recent activity for dashboard"
)
