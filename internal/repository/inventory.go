package repository

import (
	"context"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// Inventory defines the interface for inventory persistence
type Inventory interface {
	// GetInventory returns a user's stacks joined with item metadata, ordered by item name
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)

	ListItems(ctx context.Context) ([]domain.Item, error)

	// BeginTx starts a transaction for inventory mutations
	BeginTx(ctx context.Context) (GameTx, error)
}
