package handler

import (
	"net/http"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/inventory"
	"github.com/osse101/QuestBoard_Go/internal/logger"
)

// InventoryResponse lists the caller's stacks
type InventoryResponse struct {
	Items []domain.InventoryEntry `json:"items"`
}

// ItemCatalogResponse lists every item definition
type ItemCatalogResponse struct {
	Items []domain.Item `json:"items"`
}

type RemoveItemRequest struct {
	StackID  string `json:"stack_id" validate:"required,identifier"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

type RemoveItemResponse struct {
	Removed int `json:"removed"`
}

type GiveItemRequest struct {
	ItemID   string `json:"item_id" validate:"required,identifier"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleGetInventory returns the caller's inventory ordered by item name
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Success 200 {object} InventoryResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		entries, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, opGetInventory, err)
			return
		}
		if entries == nil {
			entries = []domain.InventoryEntry{}
		}

		respondJSON(w, http.StatusOK, InventoryResponse{Items: entries})
	}
}

// HandleRemoveItem removes units from one of the caller's stacks
// @Summary Remove items from a stack
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body RemoveItemRequest true "Stack and quantity"
// @Success 200 {object} RemoveItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventory/remove [post]
func HandleRemoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req RemoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, opRemoveItem); err != nil {
			return
		}

		removed, err := svc.RemoveFromInventory(r.Context(), userID, req.StackID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, opRemoveItem, err)
			return
		}

		log.Debug("Items removed", "stack_id", req.StackID, "removed", removed)
		respondJSON(w, http.StatusOK, RemoveItemResponse{Removed: removed})
	}
}

// HandleGiveItem adds items to the caller's inventory. It is only routed in dev mode.
// @Summary Give items (dev only)
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body GiveItemRequest true "Item and quantity"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventory/give [post]
func HandleGiveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req GiveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, opGiveItem); err != nil {
			return
		}

		if err := svc.AddToInventory(r.Context(), userID, req.ItemID, req.Quantity); err != nil {
			respondServiceError(w, r, opGiveItem, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemsGiven})
	}
}

// HandleListItems returns the item catalog
// @Summary List items
// @Tags inventory
// @Produce json
// @Success 200 {object} ItemCatalogResponse
// @Router /api/v1/items [get]
func HandleListItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, opListItems, err)
			return
		}
		if items == nil {
			items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, ItemCatalogResponse{Items: items})
	}
}
