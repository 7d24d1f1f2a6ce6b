package repository

import (
	"context"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// Mission defines the interface for mission data access
type Mission interface {
	// ListMissions returns every mission definition with its reward lines
	ListMissions(ctx context.Context) ([]domain.Mission, error)

	// GetMissionStates returns the completion records of a user, one per completed mission
	GetMissionStates(ctx context.Context, userID string) ([]domain.UserMissionState, error)

	// BeginMissionTx starts a transaction for completing a mission
	BeginMissionTx(ctx context.Context) (MissionTx, error)
}

// MissionTx extends GameTx with mission reads
type MissionTx interface {
	GameTx

	GetMission(ctx context.Context, missionID string) (*domain.Mission, error)

	// GetMissionState returns nil, nil when the user never completed the mission
	GetMissionState(ctx context.Context, userID, missionID string) (*domain.UserMissionState, error)
}
