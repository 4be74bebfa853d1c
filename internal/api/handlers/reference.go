package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tobin/character-vault/internal/service"
)

type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

func (h *ReferenceHandler) GetAllRaces(w http.ResponseWriter, r *http.Request) {
	races, err := h.referenceService.GetAllRaces(r.Context())
	if err != nil {
		log.Printf("ERROR [reference.GetAllRaces]: %v", err)
		http.Error(w, "Failed to get races", http.StatusInternalServerError)
		return
	}
	writeJSON(w, races)
}

func (h *ReferenceHandler) GetRace(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	race, err := h.referenceService.GetRace(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) {
			http.Error(w, "Race not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [reference.GetRace] id=%d: %v", id, err)
		http.Error(w, "Failed to get race", http.StatusInternalServerError)
		return
	}
	writeJSON(w, race)
}

func (h *ReferenceHandler) GetAllClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.referenceService.GetAllClasses(r.Context())
	if err != nil {
		log.Printf("ERROR [reference.GetAllClasses]: %v", err)
		http.Error(w, "Failed to get classes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, classes)
}

func (h *ReferenceHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	class, err := h.referenceService.GetClass(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) {
			http.Error(w, "Class not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [reference.GetClass] id=%d: %v", id, err)
		http.Error(w, "Failed to get class", http.StatusInternalServerError)
		return
	}
	writeJSON(w, class)
}

func (h *ReferenceHandler) GetAllBackgrounds(w http.ResponseWriter, r *http.Request) {
	backgrounds, err := h.referenceService.GetAllBackgrounds(r.Context())
	if err != nil {
		log.Printf("ERROR [reference.GetAllBackgrounds]: %v", err)
		http.Error(w, "Failed to get backgrounds", http.StatusInternalServerError)
		return
	}
	writeJSON(w, backgrounds)
}

func (h *ReferenceHandler) GetBackground(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	background, err := h.referenceService.GetBackground(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) {
			http.Error(w, "Background not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [reference.GetBackground] id=%d: %v", id, err)
		http.Error(w, "Failed to get background", http.StatusInternalServerError)
		return
	}
	writeJSON(w, background)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (uint, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id < 1 {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}
