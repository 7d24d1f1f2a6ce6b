package activity

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// MockRepository is a mock implementation of repository.Activity
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetRecentActivities(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

func (m *MockRepository) CleanupOldActivities(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
