package activity

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// Service reads the activity feed and prunes old entries.
// Entries are written by the transactions that produce them, never here.
type Service interface {
	// Recent returns the user's newest entries first, labelled for display
	Recent(ctx context.Context, userID string, limit int) ([]domain.ActivityEntry, error)

	// CleanupOldActivities removes entries older than the retention period
	CleanupOldActivities(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.Activity
}

// NewService creates a new activity service
func NewService(repo repository.Activity) Service {
	return &service{repo: repo}
}

func (s *service) Recent(ctx context.Context, userID string, limit int) ([]domain.ActivityEntry, error) {
	limit = ClampLimit(limit)

	logs, err := s.repo.GetRecentActivities(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, domain.ActivityEntry{
			ActivityLogEntry: l,
			Label:            Label(l.Type),
		})
	}
	return entries, nil
}

func (s *service) CleanupOldActivities(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldActivities(ctx, retentionDays)
}

// ClampLimit maps a requested feed size into [1, MaxRecentLimit]
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}

var titleCaser = cases.Title(language.English)

// Label turns an activity type such as MISSION_COMPLETED into "Mission Completed"
func Label(activityType string) string {
	words := strings.ReplaceAll(strings.ToLower(activityType), "_", " ")
	return titleCaser.String(words)
}
