package handler

import (
	"net/http"

	"github.com/motionhq/motion/api/internal/service"
)

// Placeholder handles GET /api/placeholder/{width}/{height}.
// Either segment may be omitted.
func Placeholder(w http.ResponseWriter, r *http.Request) {
	width := service.PlaceholderDimension(r.PathValue("width"), service.DefaultPlaceholderWidth)
	height := service.PlaceholderDimension(r.PathValue("height"), service.DefaultPlaceholderHeight)

	svg := service.RenderPlaceholder(width, height)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}
