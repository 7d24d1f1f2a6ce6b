package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

const (
	queryListMissions = `
		SELECT id, title, description, xp_reward, money_reward, cooldown_seconds, created_at
		FROM missions
		ORDER BY title`

	queryAllMissionRewards = `
		SELECT mr.mission_id, mr.item_id, i.name, i.icon, mr.quantity, mr.position
		FROM mission_rewards mr
		JOIN items i ON i.id = mr.item_id
		ORDER BY mr.mission_id, mr.position`

	queryMissionStatesByUser = `
		SELECT user_id, mission_id, status, completed_at, version
		FROM user_mission_states
		WHERE user_id = $1`
)

// MissionRepository implements repository.Mission for PostgreSQL
type MissionRepository struct {
	db *pgxpool.Pool
}

var _ repository.Mission = (*MissionRepository)(nil)

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository(db *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{db: db}
}

// BeginMissionTx starts a read-committed transaction for one completion
func (r *MissionRepository) BeginMissionTx(ctx context.Context) (repository.MissionTx, error) {
	tx, err := beginGameTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ListMissions returns all missions ordered by title, each with its rewards in position order
func (r *MissionRepository) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	rows, err := r.db.Query(ctx, queryListMissions)
	if err != nil {
		return nil, classify(opListMissions, err)
	}
	missions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Mission, error) {
		var m domain.Mission
		err := row.Scan(&m.ID, &m.Title, &m.Description, &m.XPReward, &m.MoneyReward, &m.CooldownSeconds, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, classify(opListMissions, err)
	}

	rows, err = r.db.Query(ctx, queryAllMissionRewards)
	if err != nil {
		return nil, classify(opListMissions, err)
	}
	lines, err := pgx.CollectRows(rows, scanRewardLine)
	if err != nil {
		return nil, classify(opListMissions, err)
	}

	byMission := make(map[string][]domain.RewardLine, len(missions))
	for _, l := range lines {
		byMission[l.MissionID] = append(byMission[l.MissionID], l.RewardLine)
	}
	for i := range missions {
		missions[i].Rewards = byMission[missions[i].ID]
	}
	return missions, nil
}

// GetMissionStates returns every completion record of a user
func (r *MissionRepository) GetMissionStates(ctx context.Context, userID string) ([]domain.UserMissionState, error) {
	rows, err := r.db.Query(ctx, queryMissionStatesByUser, userID)
	if err != nil {
		return nil, classify(opListStates, err)
	}
	states, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserMissionState, error) {
		var s domain.UserMissionState
		err := row.Scan(&s.UserID, &s.MissionID, &s.Status, &s.CompletedAt, &s.Version)
		return s, err
	})
	if err != nil {
		return nil, classify(opListStates, err)
	}
	return states, nil
}
