package domain

import "time"

// User represents a player and their progression stats.
// Level is cached and always equals leveling.LevelFor(Experience).
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Experience int64     `json:"experience"`
	Level      int       `json:"level"`
	Money      int64     `json:"money"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// XPProgress describes how far a user is into their current level
type XPProgress struct {
	Current    int64   `json:"current"`
	Needed     int64   `json:"needed"`
	Percentage float64 `json:"percentage"`
}

// PlayerSummary is the public view of another player
type PlayerSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Online bool   `json:"online"`
}

// Dashboard aggregates everything shown on a player's home page
type Dashboard struct {
	User             User            `json:"user"`
	Progress         XPProgress      `json:"progress"`
	RecentActivities []ActivityEntry `json:"recent_activities"`
	Players          []PlayerSummary `json:"players"`
}
