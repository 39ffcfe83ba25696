package handler

import (
	"net/http"

	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/service"
)

// AdventureHandler handles saved adventure endpoints
type AdventureHandler struct {
	adventureService *service.AdventureService
}

// NewAdventureHandler creates a new adventure handler
func NewAdventureHandler(adventureService *service.AdventureService) *AdventureHandler {
	return &AdventureHandler{
		adventureService: adventureService,
	}
}

// GetAdventure handles GET /api/adventures/{id}
func (h *AdventureHandler) GetAdventure(w http.ResponseWriter, r *http.Request) {
	adventure, err := h.adventureService.GetAdventure(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch adventure")
		return
	}

	WriteJSON(w, http.StatusOK, model.AdventureResponse{Adventure: adventure.View()})
}

// ListAdventures handles GET /api/adventures?userId=
func (h *AdventureHandler) ListAdventures(w http.ResponseWriter, r *http.Request) {
	adventures, err := h.adventureService.ListAdventures(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch adventures")
		return
	}

	views := make([]*model.AdventureView, 0, len(adventures))
	for _, a := range adventures {
		views = append(views, a.View())
	}
	WriteJSON(w, http.StatusOK, model.AdventureListResponse{Adventures: views})
}

// CreateAdventure handles POST /api/adventures
func (h *AdventureHandler) CreateAdventure(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdventureRequest
	if apiErr := DecodeAndValidate(w, r, &req); apiErr != nil {
		WriteError(w, apiErr)
		return
	}

	adventure, err := h.adventureService.CreateAdventure(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to save adventure")
		return
	}

	WriteJSON(w, http.StatusCreated, model.AdventureResponse{Adventure: adventure.View()})
}

// UpdateAdventure handles PATCH /api/adventures/{id}
func (h *AdventureHandler) UpdateAdventure(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAdventureRequest
	if apiErr := DecodeAndValidate(w, r, &req); apiErr != nil {
		WriteError(w, apiErr)
		return
	}

	adventure, err := h.adventureService.UpdateAdventure(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update adventure")
		return
	}

	WriteJSON(w, http.StatusOK, model.AdventureResponse{Adventure: adventure.View()})
}

// DeleteAdventure handles DELETE /api/adventures/{id}
func (h *AdventureHandler) DeleteAdventure(w http.ResponseWriter, r *http.Request) {
	if err := h.adventureService.DeleteAdventure(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Failed to delete adventure")
		return
	}

	WriteNoContent(w)
}
