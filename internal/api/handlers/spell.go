package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tobin/character-vault/internal/api/middleware"
	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/service"
	"github.com/tobin/character-vault/internal/websocket"
)

type SpellHandler struct {
	spellbookService *service.SpellbookService
	hub              *websocket.Hub
}

func NewSpellHandler(spellbookService *service.SpellbookService, hub *websocket.Hub) *SpellHandler {
	return &SpellHandler{spellbookService: spellbookService, hub: hub}
}

func (h *SpellHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	spells, err := h.spellbookService.ListSpells(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [spell.List] userID=%d: %v", userID, err)
		http.Error(w, "Failed to list spells", http.StatusInternalServerError)
		return
	}
	writeJSON(w, spells)
}

type CreateSpellRequest struct {
	Name        string          `json:"name"`
	Level       int             `json:"level"`
	School      string          `json:"school"`
	Tags        json.RawMessage `json:"tags"`
	Description string          `json:"description"`
}

func (h *SpellHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateSpellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	spell, err := h.spellbookService.CreateSpell(r.Context(), userID, service.CreateSpellInput{
		Name:        req.Name,
		Level:       req.Level,
		School:      req.School,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("ERROR [spell.Create] userID=%d: %v", userID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, spell)
}

func (h *SpellHandler) AddKnown(w http.ResponseWriter, r *http.Request) {
	h.mutateKnown(w, r, "spell.AddKnown", h.spellbookService.AddKnownSpell)
}

func (h *SpellHandler) RemoveKnown(w http.ResponseWriter, r *http.Request) {
	h.mutateKnown(w, r, "spell.RemoveKnown", h.spellbookService.RemoveKnownSpell)
}

func (h *SpellHandler) mutateKnown(w http.ResponseWriter, r *http.Request, op string, apply func(ctx context.Context, characterID, spellID, userID uint) error) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	characterID, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	spellID, ok := parseID(w, r, "spellId")
	if !ok {
		return
	}

	if err := apply(r.Context(), characterID, spellID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotCharacterOwner):
			http.Error(w, "Character not found or not owned by user", http.StatusNotFound)
		case errors.Is(err, domain.ErrSpellNotFound):
			http.Error(w, "Spell not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [%s] characterID=%d spellID=%d: %v", op, characterID, spellID, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.hub.NotifyUpdated(characterID)
	w.WriteHeader(http.StatusNoContent)
}
