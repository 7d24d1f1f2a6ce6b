package domain

import "time"

// MissionStatus is the persisted status of a user's mission record
type MissionStatus string

const (
	// MissionStatusCompleted is the only persisted status; no record means never completed
	MissionStatusCompleted MissionStatus = "COMPLETED"
)

// Availability is the computed state of a mission for one user
type Availability string

const (
	AvailabilityAvailable Availability = "AVAILABLE"
	AvailabilityCooldown  Availability = "COOLDOWN"
)

// Mission is a static, repeatable mission definition
type Mission struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	XPReward        int64        `json:"xp_reward"`
	MoneyReward     int64        `json:"money_reward"`
	CooldownSeconds int64        `json:"cooldown_seconds"`
	Rewards         []RewardLine `json:"rewards"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Cooldown returns the cooldown window as a duration
func (m Mission) Cooldown() time.Duration {
	if m.CooldownSeconds <= 0 {
		return 0
	}
	return time.Duration(m.CooldownSeconds) * time.Second
}

// RewardLine is one item grant of a mission, ordered by Position
type RewardLine struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Icon     string `json:"icon,omitempty"`
	Quantity int    `json:"quantity"`
	Position int    `json:"position"`
}

// UserMissionState records the last completion of a mission by a user.
// Version increases by one on every completion and guards concurrent updates.
type UserMissionState struct {
	UserID      string        `json:"user_id"`
	MissionID   string        `json:"mission_id"`
	Status      MissionStatus `json:"status"`
	CompletedAt time.Time     `json:"completed_at"`
	Version     int64         `json:"version"`
}

// MissionView is a mission resolved against a user's completion state at read time
type MissionView struct {
	Mission
	Slug            string       `json:"slug"`
	Status          Availability `json:"status"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
	NextAvailableAt *time.Time   `json:"next_available_at,omitempty"`
}

// GrantedItem is a quantity of an item handed out by a completion
type GrantedItem struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// CompletionResult summarizes the effects of a committed mission completion
type CompletionResult struct {
	MissionID       string        `json:"mission_id"`
	MissionTitle    string        `json:"mission_title"`
	XPAwarded       int64         `json:"xp_awarded"`
	MoneyAwarded    int64         `json:"money_awarded"`
	PreviousLevel   int           `json:"previous_level"`
	NewLevel        int           `json:"new_level"`
	LeveledUp       bool          `json:"leveled_up"`
	Experience      int64         `json:"experience"`
	Money           int64         `json:"money"`
	CompletedAt     time.Time     `json:"completed_at"`
	NextAvailableAt *time.Time    `json:"next_available_at,omitempty"`
	Items           []GrantedItem `json:"items"`
}
