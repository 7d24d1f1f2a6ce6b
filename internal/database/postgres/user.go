package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

const (
	queryUserByID = `
		SELECT id, name, experience, level, money, created_at, updated_at
		FROM users
		WHERE id = $1`

	queryOtherUsers = `
		SELECT id, name, experience, level, money, created_at, updated_at
		FROM users
		WHERE id <> $1
		ORDER BY level DESC, name
		LIMIT $2`

	queryUpsertUser = `
		INSERT INTO users (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id, name, experience, level, money, created_at, updated_at`
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

var _ repository.User = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, queryUserByID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, classify(opGetUser, err)
	}
	return u, nil
}

// ListOtherUsers returns the highest-level players other than excludeUserID
func (r *UserRepository) ListOtherUsers(ctx context.Context, excludeUserID string, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, queryOtherUsers, excludeUserID, limit)
	if err != nil {
		return nil, classify(opListUsers, err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		u, err := scanUser(row)
		if err != nil {
			return domain.User{}, err
		}
		return *u, nil
	})
	if err != nil {
		return nil, classify(opListUsers, err)
	}
	return users, nil
}

// UpsertUser creates the user row on first sight and keeps the display name current
func (r *UserRepository) UpsertUser(ctx context.Context, userID, name string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, queryUpsertUser, userID, name))
	if err != nil {
		return nil, classify(opUpsertUser, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Experience, &u.Level, &u.Money, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
