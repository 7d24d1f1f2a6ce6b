package repository

import (
	"time"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// Changeset is a unit of work: every mutation staged for one transaction.
// Apply writes them in field order: mission state, user stats, activities, stack deletes, updates, creates.
type Changeset struct {
	MissionState *MissionStateChange
	UserStats    *UserStatsChange
	Activities   []domain.ActivityLogEntry
	StackDeletes []string
	StackUpdates []domain.InventoryStack
	StackCreates []domain.InventoryStack
}

// MissionStateChange marks a mission completed for a user.
// Insert is set for a first completion; otherwise the write only succeeds if the
// stored version still equals ExpectedVersion.
type MissionStateChange struct {
	UserID          string
	MissionID       string
	CompletedAt     time.Time
	Insert          bool
	ExpectedVersion int64
}

// NextVersion is the version stored once the change is applied
func (c MissionStateChange) NextVersion() int64 {
	if c.Insert {
		return 1
	}
	return c.ExpectedVersion + 1
}

// UserStatsChange holds the new absolute stat values of a user
type UserStatsChange struct {
	UserID     string
	Experience int64
	Level      int
	Money      int64
	UpdatedAt  time.Time
}

// AddStackPlan stages the stack writes of an inventory plan
func (c *Changeset) AddStackPlan(plan domain.StackPlan) {
	c.StackUpdates = append(c.StackUpdates, plan.Updates...)
	c.StackCreates = append(c.StackCreates, plan.Creates...)
}

// AddActivity stages an activity log entry
func (c *Changeset) AddActivity(entry domain.ActivityLogEntry) {
	c.Activities = append(c.Activities, entry)
}

// IsEmpty reports whether nothing is staged
func (c *Changeset) IsEmpty() bool {
	return c.MissionState == nil &&
		c.UserStats == nil &&
		len(c.Activities) == 0 &&
		len(c.StackDeletes) == 0 &&
		len(c.StackUpdates) == 0 &&
		len(c.StackCreates) == 0
}
