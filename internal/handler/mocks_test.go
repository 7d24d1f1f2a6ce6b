package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/QuestBoard_Go/internal/auth"
	"github.com/osse101/QuestBoard_Go/internal/domain"
)

type MockMissionService struct {
	mock.Mock
}

func (m *MockMissionService) CompleteMission(ctx context.Context, userID, missionID string) (*domain.CompletionResult, error) {
	args := m.Called(ctx, userID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionResult), args.Error(1)
}

func (m *MockMissionService) ListMissions(ctx context.Context, userID string) ([]domain.MissionView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissionView), args.Error(1)
}

func (m *MockMissionService) RefreshCatalog(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) AddToInventory(ctx context.Context, userID, itemID string, quantity int) error {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Error(0)
}

func (m *MockInventoryService) RemoveFromInventory(ctx context.Context, userID, stackID string, quantity int) (int, error) {
	args := m.Called(ctx, userID, stackID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryService) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockInventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockUserService) RecordSeen(ctx context.Context, id auth.Identity) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Recent(ctx context.Context, userID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

func (m *MockActivityService) CleanupOldActivities(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

type mockPool struct {
	pingErr error
}

func (p *mockPool) Ping(context.Context) error { return p.pingErr }
func (p *mockPool) Close()                     {}
