package repository

import (
	"context"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// Activity defines the interface for activity log storage.
// Entries are written through Changeset; this interface only reads and expires them.
type Activity interface {
	// GetRecentActivities retrieves the newest entries of a user
	GetRecentActivities(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error)

	// CleanupOldActivities removes entries older than the specified number of days
	CleanupOldActivities(ctx context.Context, retentionDays int) (int64, error)
}
