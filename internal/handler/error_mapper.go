package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/motionhq/motion/api/internal/middleware"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/service"
)

// MapServiceError converts a service error to an error response.
// It returns nil for errors that have no client-facing meaning; callers
// treat those as internal failures.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrAdventureNotFound):
		return model.NewNotFoundError("Adventure")
	case errors.Is(err, service.ErrAlbumNotFound):
		return model.NewNotFoundError("Album")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrAdventureIDRequired):
		return model.NewBadRequestError("Adventure ID is required")
	case errors.Is(err, service.ErrAlbumIDRequired):
		return model.NewBadRequestError("Album ID is required")
	case errors.Is(err, service.ErrUserIDRequired):
		return model.NewValidationError([]model.FieldError{{Field: "userId", Message: "is required"}})
	case errors.Is(err, service.ErrCommunityIDRequired):
		return model.NewValidationError([]model.FieldError{{Field: "communityId", Message: "is required"}})
	case errors.Is(err, service.ErrNoAdventureChanges):
		return model.NewBadRequestError(err.Error())

	// ===== Upstream Errors → 500 =====
	case errors.Is(err, service.ErrBackendUnreachable):
		apiErr := model.NewInternalError("Failed to reach backend")
		apiErr.Details = []model.FieldError{{Field: "backend", Message: err.Error()}}
		return apiErr
	}

	return nil
}

// writeServiceError maps err and writes it. Unmapped errors are logged and
// answered with a 500 carrying fallback as the message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if apiErr := MapServiceError(err); apiErr != nil {
		if apiErr.Status >= http.StatusInternalServerError {
			logError(r, fallback, err)
		}
		WriteError(w, apiErr)
		return
	}

	logError(r, fallback, err)
	WriteError(w, model.NewInternalError(fallback))
}

func logError(r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg,
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetRequestID(r.Context()),
	)
}
