package handler

import (
	"net/http"

	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/service"
)

// AlbumHandler handles album endpoints
type AlbumHandler struct {
	albumService *service.AlbumService
}

// NewAlbumHandler creates a new album handler
func NewAlbumHandler(albumService *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{
		albumService: albumService,
	}
}

// ListAlbums handles GET /api/albums?userId=
func (h *AlbumHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.albumService.ListAlbums(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch albums")
		return
	}

	WriteJSON(w, http.StatusOK, model.AlbumListResponse{Albums: albums})
}

// GetAlbum handles GET /api/albums/{id}
func (h *AlbumHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.albumService.GetAlbum(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch album")
		return
	}

	WriteJSON(w, http.StatusOK, model.AlbumResponse{Album: album})
}

// CreateAlbum handles POST /api/albums
func (h *AlbumHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAlbumRequest
	if apiErr := DecodeAndValidate(w, r, &req); apiErr != nil {
		WriteError(w, apiErr)
		return
	}

	album, err := h.albumService.CreateAlbum(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create album")
		return
	}

	WriteJSON(w, http.StatusCreated, model.AlbumResponse{Album: album})
}
