package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/logger"
	"github.com/osse101/QuestBoard_Go/internal/metrics"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// Service defines the inventory operations
type Service interface {
	// AddToInventory places quantity units of an item into the user's stacks in its own transaction
	AddToInventory(ctx context.Context, userID, itemID string, quantity int) error

	// RemoveFromInventory takes up to quantity units out of one stack and returns how many were removed
	RemoveFromInventory(ctx context.Context, userID, stackID string, quantity int) (int, error)

	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

func (s *service) AddToInventory(ctx context.Context, userID, itemID string, quantity int) error {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock the owner first so concurrent grants to one user serialize
	if _, err := tx.GetUserForUpdate(ctx, userID); err != nil {
		return err
	}

	cs := &repository.Changeset{}
	if err := StageAdd(ctx, tx, cs, userID, itemID, quantity); err != nil {
		return err
	}

	if err := tx.Apply(ctx, cs); err != nil {
		return fmt.Errorf(ErrMsgApplyFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitFailed, err)
	}

	metrics.ItemsGranted.WithLabelValues(metrics.SourceDirect).Add(float64(quantity))
	log.Info(LogMsgItemsAdded, "user_id", userID, "item_id", itemID, "quantity", quantity,
		"updated_stacks", len(cs.StackUpdates), "created_stacks", len(cs.StackCreates))
	return nil
}

// StageAdd reads the item and the user's stacks of it inside tx and stages the stack writes
// needed to add quantity units. Nothing is written until the changeset is applied.
func StageAdd(ctx context.Context, tx repository.GameTx, cs *repository.Changeset, userID, itemID string, quantity int) error {
	item, err := tx.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	stacks, err := tx.GetStacksForUpdate(ctx, userID, itemID)
	if err != nil {
		return err
	}

	plan, err := PlanAdd(userID, *item, stacks, quantity)
	if err != nil {
		return err
	}
	cs.AddStackPlan(plan)
	return nil
}

func (s *service) RemoveFromInventory(ctx context.Context, userID, stackID string, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	stack, err := tx.GetStackForUpdate(ctx, stackID)
	if err != nil {
		return 0, err
	}

	removal, err := PlanRemove(stack, userID, quantity)
	if err != nil {
		if stack != nil && stack.UserID != userID {
			log.Warn(LogMsgForeignStack, "user_id", userID, "stack_id", stackID)
		}
		return 0, err
	}

	cs := &repository.Changeset{}
	if removal.Delete {
		cs.StackDeletes = append(cs.StackDeletes, removal.Stack.ID)
	} else {
		cs.StackUpdates = append(cs.StackUpdates, removal.Stack)
	}

	if err := tx.Apply(ctx, cs); err != nil {
		return 0, fmt.Errorf(ErrMsgApplyFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	metrics.ItemsRemoved.Add(float64(removal.Removed))
	log.Info(LogMsgItemsRemoved, "user_id", userID, "stack_id", stackID,
		"removed", removal.Removed, "deleted", removal.Delete)
	return removal.Removed, nil
}

func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return s.repo.GetInventory(ctx, userID)
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}
