package handler

import (
	"log/slog"
	"net/http"

	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/service"
)

// AdminHandler handles operator endpoints
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// UpdatePrivileges handles POST /api/admin/update-privileges.
// The route is unauthenticated; deployments must restrict it at the edge.
func (h *AdminHandler) UpdatePrivileges(w http.ResponseWriter, r *http.Request) {
	var req model.UpdatePrivilegesRequest
	if apiErr := DecodeAndValidate(w, r, &req); apiErr != nil {
		WriteError(w, apiErr)
		return
	}

	profile, err := h.adminService.GrantPro(r.Context(), req.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update user privileges")
		return
	}

	slog.InfoContext(r.Context(), "granted pro subscription", "user_id", profile.ID)
	WriteJSON(w, http.StatusOK, model.UpdatePrivilegesResponse{
		Message: model.PrivilegesUpdatedMessage,
		Profile: profile,
	})
}
