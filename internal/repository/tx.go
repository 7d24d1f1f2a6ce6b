package repository

import (
	"context"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// GameTx is a store transaction that reads with row locks and applies a Changeset.
// Reads ending in ForUpdate lock the returned rows until the transaction ends.
type GameTx interface {
	Tx

	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	GetStacksForUpdate(ctx context.Context, userID, itemID string) ([]domain.InventoryStack, error)
	GetStackForUpdate(ctx context.Context, stackID string) (*domain.InventoryStack, error)

	// Apply writes every staged mutation of the changeset in order.
	// It returns domain.ErrConcurrentModification when the mission state guard fails.
	Apply(ctx context.Context, cs *Changeset) error
}
