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

// RecentHeader carries the recently-viewed characters token between the
// browser and the server. The token itself is opaque to the client.
const RecentHeader = "X-Recent-Characters"

type CharacterHandler struct {
	characterService *service.CharacterService
	recentService    *service.RecentService
	hub              *websocket.Hub
}

func NewCharacterHandler(characterService *service.CharacterService, recentService *service.RecentService, hub *websocket.Hub) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
		recentService:    recentService,
		hub:              hub,
	}
}

type CharacterRequest struct {
	Name             string `json:"name"`
	RaceID           uint   `json:"raceId"`
	ClassID          uint   `json:"classId"`
	BackgroundID     uint   `json:"backgroundId"`
	EthicsID         uint   `json:"ethicsId"`
	MoralityID       uint   `json:"moralityId"`
	ProficiencyBonus int    `json:"proficiencyBonus"`
	MaxHitPoints     int    `json:"maxHitPoints"`
	CurrentHitPoints int    `json:"currentHitPoints"`
	Level            int    `json:"level"`
	ArmorClass       int    `json:"armorClass"`
	AbilityScores    []int  `json:"abilityScores"`
	SavingThrows     []uint `json:"savingThrows"`
}

type CreateCharacterResponse struct {
	ID uint `json:"id"`
}

type SheetResponse struct {
	*domain.CharacterSheet
	RecentCharacters domain.RecentList `json:"recentCharacters"`
}

func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.characterService.Create(r.Context(), characterInput(userID, req))
	if err != nil {
		h.writeCharacterError(w, "character.Create", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, CreateCharacterResponse{ID: id})
}

func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	characters, err := h.characterService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [character.List] userID=%d: %v", userID, err)
		http.Error(w, "Failed to list characters", http.StatusInternalServerError)
		return
	}
	writeJSON(w, characters)
}

func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	sheet, err := h.characterService.Get(r.Context(), id)
	if err != nil {
		h.writeCharacterError(w, "character.Get", err)
		return
	}

	recent, token, err := h.recentService.Touch(r.Context(), id, r.Header.Get(RecentHeader))
	if err != nil {
		log.Printf("ERROR [character.Get] recent list for id=%d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set(RecentHeader, token)
	writeJSON(w, SheetResponse{CharacterSheet: sheet, RecentCharacters: recent})
}

func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req CharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.characterService.Update(r.Context(), id, characterInput(userID, req)); err != nil {
		h.writeCharacterError(w, "character.Update", err)
		return
	}

	h.hub.NotifyUpdated(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.characterService.Delete(r.Context(), id); err != nil {
		h.writeCharacterError(w, "character.Delete", err)
		return
	}

	h.hub.NotifyDeleted(id)
	w.WriteHeader(http.StatusNoContent)
}

type DeltaRequest struct {
	Delta int `json:"delta"`
}

type ValueRequest struct {
	Value int `json:"value"`
}

func (h *CharacterHandler) AddHitPoints(w http.ResponseWriter, r *http.Request) {
	h.applyDelta(w, r, "character.AddHitPoints", h.characterService.AddHitPoints)
}

func (h *CharacterHandler) LevelUp(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	character, err := h.characterService.LevelUp(r.Context(), id)
	if err != nil {
		h.writeCharacterError(w, "character.LevelUp", err)
		return
	}

	h.hub.NotifyUpdated(id)
	writeJSON(w, character)
}

func (h *CharacterHandler) SetExperience(w http.ResponseWriter, r *http.Request) {
	h.applyValue(w, r, "character.SetExperience", h.characterService.SetExperience)
}

func (h *CharacterHandler) SetArmorClass(w http.ResponseWriter, r *http.Request) {
	h.applyValue(w, r, "character.SetArmorClass", h.characterService.SetArmorClass)
}

func (h *CharacterHandler) SetSpeed(w http.ResponseWriter, r *http.Request) {
	h.applyValue(w, r, "character.SetSpeed", h.characterService.SetSpeed)
}

func (h *CharacterHandler) SetInitiative(w http.ResponseWriter, r *http.Request) {
	h.applyValue(w, r, "character.SetInitiative", h.characterService.SetInitiative)
}

type AbilityScoresRequest struct {
	Scores []int `json:"scores"`
}

func (h *CharacterHandler) SetAbilityScores(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req AbilityScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.characterService.SetAbilityScores(r.Context(), id, req.Scores); err != nil {
		h.writeCharacterError(w, "character.SetAbilityScores", err)
		return
	}

	h.hub.NotifyUpdated(id)
	w.WriteHeader(http.StatusNoContent)
}

type SavingThrowsRequest struct {
	AbilityIDs []uint `json:"abilityIds"`
}

func (h *CharacterHandler) SetSavingThrows(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req SavingThrowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.characterService.SetSavingThrows(r.Context(), id, req.AbilityIDs); err != nil {
		h.writeCharacterError(w, "character.SetSavingThrows", err)
		return
	}

	h.hub.NotifyUpdated(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CharacterHandler) applyDelta(w http.ResponseWriter, r *http.Request, op string, apply func(ctx context.Context, id uint, delta int) (*domain.Character, error)) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req DeltaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	character, err := apply(r.Context(), id, req.Delta)
	if err != nil {
		h.writeCharacterError(w, op, err)
		return
	}

	h.hub.NotifyUpdated(id)
	writeJSON(w, character)
}

func (h *CharacterHandler) applyValue(w http.ResponseWriter, r *http.Request, op string, apply func(ctx context.Context, id uint, value int) (*domain.Character, error)) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req ValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	character, err := apply(r.Context(), id, req.Value)
	if err != nil {
		h.writeCharacterError(w, op, err)
		return
	}

	h.hub.NotifyUpdated(id)
	writeJSON(w, character)
}

func (h *CharacterHandler) writeCharacterError(w http.ResponseWriter, op string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(verr)
	case errors.Is(err, domain.ErrCharacterNotFound):
		http.Error(w, "Character not found", http.StatusNotFound)
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func characterInput(userID uint, req CharacterRequest) service.CharacterInput {
	return service.CharacterInput{
		UserID:           userID,
		Name:             req.Name,
		RaceID:           req.RaceID,
		ClassID:          req.ClassID,
		BackgroundID:     req.BackgroundID,
		EthicsID:         req.EthicsID,
		MoralityID:       req.MoralityID,
		ProficiencyBonus: req.ProficiencyBonus,
		MaxHitPoints:     req.MaxHitPoints,
		CurrentHitPoints: req.CurrentHitPoints,
		Level:            req.Level,
		ArmorClass:       req.ArmorClass,
		AbilityScores:    req.AbilityScores,
		SavingThrows:     req.SavingThrows,
	}
}
