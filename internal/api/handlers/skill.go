package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/tobin/character-vault/internal/domain"
	"github.com/tobin/character-vault/internal/service"
	"github.com/tobin/character-vault/internal/websocket"
)

type SkillHandler struct {
	skillService *service.SkillService
	hub          *websocket.Hub
}

func NewSkillHandler(skillService *service.SkillService, hub *websocket.Hub) *SkillHandler {
	return &SkillHandler{skillService: skillService, hub: hub}
}

func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	proficiencies, err := h.skillService.ListProficiencies(r.Context(), id)
	if err != nil {
		log.Printf("ERROR [skill.List] characterID=%d: %v", id, err)
		http.Error(w, "Failed to list skill proficiencies", http.StatusInternalServerError)
		return
	}
	writeJSON(w, proficiencies)
}

func (h *SkillHandler) AddProficiency(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "skill.AddProficiency", h.skillService.AddProficiency)
}

func (h *SkillHandler) RemoveProficiency(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "skill.RemoveProficiency", h.skillService.RemoveProficiency)
}

func (h *SkillHandler) AddExpertise(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "skill.AddExpertise", h.skillService.AddExpertise)
}

func (h *SkillHandler) RemoveExpertise(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "skill.RemoveExpertise", h.skillService.RemoveExpertise)
}

func (h *SkillHandler) mutate(w http.ResponseWriter, r *http.Request, op string, apply func(ctx context.Context, characterID, skillID uint) error) {
	characterID, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	skillID, ok := parseID(w, r, "skillId")
	if !ok {
		return
	}

	if err := apply(r.Context(), characterID, skillID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCharacterNotFound):
			http.Error(w, "Character not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrSkillNotFound):
			http.Error(w, "Skill not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrSkillProficiencyMissing):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("ERROR [%s] characterID=%d skillID=%d: %v", op, characterID, skillID, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.hub.NotifyUpdated(characterID)
	w.WriteHeader(http.StatusNoContent)
}
