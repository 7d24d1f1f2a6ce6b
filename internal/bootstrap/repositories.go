package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBoard_Go/internal/database/postgres"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Mission   repository.Mission
	Inventory repository.Inventory
	User      repository.User
	Activity  repository.Activity
}

// InitializeRepositories creates all repository implementations on one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Mission:   postgres.NewMissionRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		User:      postgres.NewUserRepository(dbPool),
		Activity:  postgres.NewActivityRepository(dbPool),
	}
}
