package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

const (
	queryUserForUpdate = `
		SELECT id, name, experience, level, money, created_at, updated_at
		FROM users
		WHERE id = $1
		FOR UPDATE`

	queryItemByID = `
		SELECT id, name, description, icon, stackable, max_stack, created_at
		FROM items
		WHERE id = $1`

	queryStacksForUpdate = `
		SELECT id, user_id, item_id, quantity
		FROM inventory_stacks
		WHERE user_id = $1 AND item_id = $2
		ORDER BY id
		FOR UPDATE`

	queryStackForUpdate = `
		SELECT id, user_id, item_id, quantity
		FROM inventory_stacks
		WHERE id = $1
		FOR UPDATE`

	queryMissionByID = `
		SELECT id, title, description, xp_reward, money_reward, cooldown_seconds, created_at
		FROM missions
		WHERE id = $1`

	queryMissionRewards = `
		SELECT mr.mission_id, mr.item_id, i.name, i.icon, mr.quantity, mr.position
		FROM mission_rewards mr
		JOIN items i ON i.id = mr.item_id
		WHERE mr.mission_id = $1
		ORDER BY mr.position`

	queryMissionState = `
		SELECT user_id, mission_id, status, completed_at, version
		FROM user_mission_states
		WHERE user_id = $1 AND mission_id = $2`

	execInsertMissionState = `
		INSERT INTO user_mission_states (user_id, mission_id, status, completed_at, version)
		VALUES ($1, $2, $3, $4, 1)`

	// The version predicate is the compare-and-swap guard
	execUpdateMissionState = `
		UPDATE user_mission_states
		SET status = $3, completed_at = $4, version = version + 1
		WHERE user_id = $1 AND mission_id = $2 AND version = $5`

	execUpdateUserStats = `
		UPDATE users
		SET experience = $2, level = $3, money = $4, updated_at = $5
		WHERE id = $1`

	execInsertActivity = `
		INSERT INTO activity_logs (user_id, type, description, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	execDeleteStack = `DELETE FROM inventory_stacks WHERE id = $1`

	execUpdateStack = `
		UPDATE inventory_stacks
		SET quantity = $2, updated_at = NOW()
		WHERE id = $1`

	execInsertStack = `
		INSERT INTO inventory_stacks (user_id, item_id, quantity)
		VALUES ($1, $2, $3)`
)

// gameTx is a pgx transaction implementing repository.MissionTx
type gameTx struct {
	tx pgx.Tx
}

var _ repository.MissionTx = (*gameTx)(nil)

func beginGameTx(ctx context.Context, db *pgxpool.Pool) (*gameTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, classify(opBeginTx, err)
	}
	return &gameTx{tx: tx}, nil
}

func (t *gameTx) Commit(ctx context.Context) error {
	return classify(opCommit, t.tx.Commit(ctx))
}

func (t *gameTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *gameTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := t.tx.QueryRow(ctx, queryUserForUpdate, userID).
		Scan(&u.ID, &u.Name, &u.Experience, &u.Level, &u.Money, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, classify(opGetUser, err)
	}
	return &u, nil
}

func (t *gameTx) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	return getItem(ctx, t.tx, itemID)
}

func (t *gameTx) GetStacksForUpdate(ctx context.Context, userID, itemID string) ([]domain.InventoryStack, error) {
	rows, err := t.tx.Query(ctx, queryStacksForUpdate, userID, itemID)
	if err != nil {
		return nil, classify(opGetStacks, err)
	}
	stacks, err := pgx.CollectRows(rows, scanStack)
	if err != nil {
		return nil, classify(opGetStacks, err)
	}
	return stacks, nil
}

func (t *gameTx) GetStackForUpdate(ctx context.Context, stackID string) (*domain.InventoryStack, error) {
	rows, err := t.tx.Query(ctx, queryStackForUpdate, stackID)
	if err != nil {
		return nil, classify(opGetStack, err)
	}
	stack, err := pgx.CollectOneRow(rows, scanStack)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(opGetStack, err)
	}
	return &stack, nil
}

func (t *gameTx) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	var m domain.Mission
	err := t.tx.QueryRow(ctx, queryMissionByID, missionID).
		Scan(&m.ID, &m.Title, &m.Description, &m.XPReward, &m.MoneyReward, &m.CooldownSeconds, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMissionNotFound
	}
	if err != nil {
		return nil, classify(opGetMission, err)
	}

	rows, err := t.tx.Query(ctx, queryMissionRewards, missionID)
	if err != nil {
		return nil, classify(opGetMission, err)
	}
	lines, err := pgx.CollectRows(rows, scanRewardLine)
	if err != nil {
		return nil, classify(opGetMission, err)
	}
	for _, l := range lines {
		m.Rewards = append(m.Rewards, l.RewardLine)
	}
	return &m, nil
}

func (t *gameTx) GetMissionState(ctx context.Context, userID, missionID string) (*domain.UserMissionState, error) {
	var s domain.UserMissionState
	err := t.tx.QueryRow(ctx, queryMissionState, userID, missionID).
		Scan(&s.UserID, &s.MissionID, &s.Status, &s.CompletedAt, &s.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(opGetMissionState, err)
	}
	return &s, nil
}

// Apply writes the changeset in field order. The first failing statement aborts
// the transaction; the caller's deferred rollback discards everything.
func (t *gameTx) Apply(ctx context.Context, cs *repository.Changeset) error {
	if cs == nil || cs.IsEmpty() {
		return nil
	}

	if err := t.applyMissionState(ctx, cs.MissionState); err != nil {
		return err
	}

	if us := cs.UserStats; us != nil {
		tag, err := t.tx.Exec(ctx, execUpdateUserStats, us.UserID, us.Experience, us.Level, us.Money, us.UpdatedAt)
		if err != nil {
			return classify(opUpdateUserStats, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrUserNotFound
		}
	}

	for _, a := range cs.Activities {
		metadata, err := json.Marshal(a.Metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", opInsertActivity, err)
		}
		if _, err := t.tx.Exec(ctx, execInsertActivity, a.UserID, a.Type, a.Description, metadata, a.CreatedAt); err != nil {
			return classify(opInsertActivity, err)
		}
	}

	return t.applyStacks(ctx, cs)
}

func (t *gameTx) applyMissionState(ctx context.Context, ms *repository.MissionStateChange) error {
	if ms == nil {
		return nil
	}

	if ms.Insert {
		_, err := t.tx.Exec(ctx, execInsertMissionState, ms.UserID, ms.MissionID, string(domain.MissionStatusCompleted), ms.CompletedAt)
		return classify(opInsertState, err)
	}

	tag, err := t.tx.Exec(ctx, execUpdateMissionState,
		ms.UserID, ms.MissionID, string(domain.MissionStatusCompleted), ms.CompletedAt, ms.ExpectedVersion)
	if err != nil {
		return classify(opUpdateState, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

func (t *gameTx) applyStacks(ctx context.Context, cs *repository.Changeset) error {
	batch := &pgx.Batch{}
	for _, id := range cs.StackDeletes {
		batch.Queue(execDeleteStack, id)
	}
	for _, s := range cs.StackUpdates {
		batch.Queue(execUpdateStack, s.ID, s.Quantity)
	}
	for _, s := range cs.StackCreates {
		batch.Queue(execInsertStack, s.UserID, s.ItemID, s.Quantity)
	}
	if batch.Len() == 0 {
		return nil
	}

	results := t.tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return classify(opWriteStacks, err)
		}
		if tag.RowsAffected() == 0 {
			_ = results.Close()
			return domain.ErrStackNotFound
		}
	}
	return classify(opWriteStacks, results.Close())
}

// queryRower is satisfied by both the pool and a transaction
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getItem(ctx context.Context, q queryRower, itemID string) (*domain.Item, error) {
	var i domain.Item
	err := q.QueryRow(ctx, queryItemByID, itemID).
		Scan(&i.ID, &i.Name, &i.Description, &i.Icon, &i.Stackable, &i.MaxStack, &i.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, classify(opGetItem, err)
	}
	return &i, nil
}

func scanStack(row pgx.CollectableRow) (domain.InventoryStack, error) {
	var s domain.InventoryStack
	err := row.Scan(&s.ID, &s.UserID, &s.ItemID, &s.Quantity)
	return s, err
}

// missionRewardRow is a reward line tagged with its mission
type missionRewardRow struct {
	MissionID string
	domain.RewardLine
}

func scanRewardLine(row pgx.CollectableRow) (missionRewardRow, error) {
	var r missionRewardRow
	err := row.Scan(&r.MissionID, &r.ItemID, &r.ItemName, &r.Icon, &r.Quantity, &r.Position)
	return r, err
}
