package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

const (
	queryInventory = `
		SELECT s.id, s.item_id, i.name, i.icon, s.quantity, i.max_stack, i.stackable
		FROM inventory_stacks s
		JOIN items i ON i.id = s.item_id
		WHERE s.user_id = $1
		ORDER BY i.name, s.created_at, s.id`

	queryListItems = `
		SELECT id, name, description, icon, stackable, max_stack, created_at
		FROM items
		ORDER BY name`
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := beginGameTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// GetInventory returns the user's stacks joined with item metadata
func (r *InventoryRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx, queryInventory, userID)
	if err != nil {
		return nil, classify(opGetInventory, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryEntry, error) {
		var e domain.InventoryEntry
		err := row.Scan(&e.StackID, &e.ItemID, &e.ItemName, &e.Icon, &e.Quantity, &e.MaxStack, &e.Stackable)
		return e, err
	})
	if err != nil {
		return nil, classify(opGetInventory, err)
	}
	return entries, nil
}

func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, queryListItems)
	if err != nil {
		return nil, classify(opListItems, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Item, error) {
		var i domain.Item
		err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Icon, &i.Stackable, &i.MaxStack, &i.CreatedAt)
		return i, err
	})
	if err != nil {
		return nil, classify(opListItems, err)
	}
	return items, nil
}
