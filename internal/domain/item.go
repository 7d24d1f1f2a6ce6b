package domain

import "time"

// Item is a catalog entry. Items are immutable after seeding.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Stackable   bool      `json:"stackable"`
	MaxStack    int       `json:"max_stack"`
	CreatedAt   time.Time `json:"created_at"`
}

// Capacity returns the largest quantity a single stack of this item may hold.
// Non-stackable items always hold one unit per stack.
func (i Item) Capacity() int {
	if !i.Stackable || i.MaxStack < 1 {
		return 1
	}
	return i.MaxStack
}

// InventoryStack is a persisted pile of identical items owned by one user.
// Quantity is always between 1 and the item's capacity.
type InventoryStack struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// InventoryEntry is a stack joined with its item metadata for display
type InventoryEntry struct {
	StackID   string `json:"stack_id"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Icon      string `json:"icon"`
	Quantity  int    `json:"quantity"`
	MaxStack  int    `json:"max_stack"`
	Stackable bool   `json:"stackable"`
}

// StackPlan lists the stack writes needed to place a quantity of one item.
// Updates carry the new absolute quantity of existing stacks; Creates have no ID yet.
type StackPlan struct {
	ItemID  string
	Updates []InventoryStack
	Creates []InventoryStack
}

// Total returns the number of units the plan adds on top of the given starting stacks.
func (p StackPlan) Total(before []InventoryStack) int {
	prev := make(map[string]int, len(before))
	for _, s := range before {
		prev[s.ID] = s.Quantity
	}

	total := 0
	for _, s := range p.Updates {
		total += s.Quantity - prev[s.ID]
	}
	for _, s := range p.Creates {
		total += s.Quantity
	}
	return total
}
