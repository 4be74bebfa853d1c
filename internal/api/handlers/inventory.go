package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/service"
	"github.com/tobin/character-vault/internal/websocket"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
	hub              *websocket.Hub
}

func NewInventoryHandler(inventoryService *service.InventoryService, hub *websocket.Hub) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, hub: hub}
}

type ItemRequest struct {
	Name  string `json:"name"`
	Delta int    `json:"delta"`
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.inventoryService.ListItems(r.Context(), id)
	if err != nil {
		log.Printf("ERROR [inventory.List] characterID=%d: %v", id, err)
		http.Error(w, "Failed to list items", http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.inventoryService.AddItem(r.Context(), id, req.Name, req.Delta); err != nil {
		h.writeInventoryError(w, "inventory.Add", err)
		return
	}

	h.hub.NotifyUpdated(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.inventoryService.RemoveItem(r.Context(), id, req.Name, req.Delta); err != nil {
		h.writeInventoryError(w, "inventory.Remove", err)
		return
	}

	h.hub.NotifyUpdated(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) writeInventoryError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrCharacterNotFound):
		http.Error(w, "Character not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrItemNotFound):
		http.Error(w, "Item not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidItemDelta), errors.Is(err, domain.ErrRemoveDeltaNotNeg):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
