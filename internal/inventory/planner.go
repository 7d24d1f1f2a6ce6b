package inventory

import (
	"fmt"
	"sort"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// PlanAdd computes the stack writes that place quantity units of item into a user's
// existing stacks.
//
// Stackable items first top up under-full stacks, fullest first, then spill into new
// stacks of at most item.Capacity(). Non-stackable items get one new stack per unit.
// Existing stacks keep their IDs; the plan never removes a stack.
func PlanAdd(userID string, item domain.Item, existing []domain.InventoryStack, quantity int) (domain.StackPlan, error) {
	if quantity <= 0 {
		return domain.StackPlan{}, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	capacity := item.Capacity()
	plan := domain.StackPlan{ItemID: item.ID}
	remaining := quantity

	if item.Stackable {
		open := make([]domain.InventoryStack, 0, len(existing))
		for _, s := range existing {
			if s.UserID == userID && s.ItemID == item.ID && s.Quantity < capacity {
				open = append(open, s)
			}
		}
		sort.SliceStable(open, func(i, j int) bool {
			return open[i].Quantity > open[j].Quantity
		})

		for _, s := range open {
			if remaining == 0 {
				break
			}
			add := min(capacity-s.Quantity, remaining)
			s.Quantity += add
			remaining -= add
			plan.Updates = append(plan.Updates, s)
		}
	}

	for remaining > 0 {
		size := min(remaining, capacity)
		plan.Creates = append(plan.Creates, domain.InventoryStack{
			UserID:   userID,
			ItemID:   item.ID,
			Quantity: size,
		})
		remaining -= size
	}

	return plan, nil
}

// RemovalPlan is the outcome of taking units out of one stack
type RemovalPlan struct {
	Delete  bool
	Stack   domain.InventoryStack
	Removed int
}

// PlanRemove takes quantity units out of a single stack owned by userID.
// A stack is deleted when the request covers its whole quantity.
func PlanRemove(stack *domain.InventoryStack, userID string, quantity int) (RemovalPlan, error) {
	if stack == nil {
		return RemovalPlan{}, domain.ErrStackNotFound
	}
	if stack.UserID != userID {
		return RemovalPlan{}, domain.ErrUnauthorized
	}
	if quantity <= 0 {
		return RemovalPlan{}, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	if quantity >= stack.Quantity {
		return RemovalPlan{Delete: true, Stack: *stack, Removed: stack.Quantity}, nil
	}

	updated := *stack
	updated.Quantity -= quantity
	return RemovalPlan{Stack: updated, Removed: quantity}, nil
}
