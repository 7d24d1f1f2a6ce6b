package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

const (
	queryRecentActivities = `
		SELECT id, user_id, type, description, metadata, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2`

	execCleanupActivities = `
		DELETE FROM activity_logs
		WHERE created_at < NOW() - make_interval(days => $1)`
)

// ActivityRepository implements repository.Activity for PostgreSQL
type ActivityRepository struct {
	db *pgxpool.Pool
}

var _ repository.Activity = (*ActivityRepository)(nil)

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) GetRecentActivities(ctx context.Context, userID string, limit int) ([]domain.ActivityLogEntry, error) {
	rows, err := r.db.Query(ctx, queryRecentActivities, userID, limit)
	if err != nil {
		return nil, classify(opRecentActivities, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityLogEntry, error) {
		var e domain.ActivityLogEntry
		err := row.Scan(&e.ID, &e.UserID, &e.Type, &e.Description, &e.Metadata, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, classify(opRecentActivities, err)
	}
	return entries, nil
}

// CleanupOldActivities deletes entries older than retentionDays and returns how many went
func (r *ActivityRepository) CleanupOldActivities(ctx context.Context, retentionDays int) (int64, error) {
	tag, err := r.db.Exec(ctx, execCleanupActivities, retentionDays)
	if err != nil {
		return 0, classify(opCleanupActivity, err)
	}
	return tag.RowsAffected(), nil
}
