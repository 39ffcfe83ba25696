package handler

import (
	"net/http"

	"github.com/motionhq/motion/api/internal/model"
)

// Routes bundles every handler the API serves
type Routes struct {
	Health     *HealthHandler
	Adventures *AdventureHandler
	Reviews    *ReviewHandler
	Albums     *AlbumHandler
	Admin      *AdminHandler
	Proxy      *ProxyHandler
	Metrics    http.Handler // optional
}

// NewMux registers all routes on a fresh ServeMux
func (rt *Routes) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	rt.Register(mux)
	return mux
}

// Register adds all routes to mux
func (rt *Routes) Register(mux *http.ServeMux) {
	// Probes
	mux.HandleFunc("GET /health", rt.Health.Health)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /api/test-railway", rt.Health.TestBackend)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	// Admin
	mux.HandleFunc("POST /api/admin/update-privileges", rt.Admin.UpdatePrivileges)

	// Saved adventures. The bare trailing slash reaches GetAdventure so a
	// missing id is reported as a 400.
	mux.HandleFunc("GET /api/adventures", rt.Adventures.ListAdventures)
	mux.HandleFunc("POST /api/adventures", rt.Adventures.CreateAdventure)
	mux.HandleFunc("GET /api/adventures/{$}", rt.Adventures.GetAdventure)
	mux.HandleFunc("GET /api/adventures/{id}", rt.Adventures.GetAdventure)
	mux.HandleFunc("PATCH /api/adventures/{id}", rt.Adventures.UpdateAdventure)
	mux.HandleFunc("DELETE /api/adventures/{id}", rt.Adventures.DeleteAdventure)

	// Community reviews
	mux.HandleFunc("GET /api/community-adventures/reviews", rt.Reviews.ListReviews)
	mux.HandleFunc("POST /api/community-adventures/reviews", rt.Reviews.CreateReview)
	mux.HandleFunc("GET /api/community-adventures/reviews/summary", rt.Reviews.GetSummary)

	// Albums
	mux.HandleFunc("GET /api/albums", rt.Albums.ListAlbums)
	mux.HandleFunc("POST /api/albums", rt.Albums.CreateAlbum)
	mux.HandleFunc("GET /api/albums/{id}", rt.Albums.GetAlbum)

	// AI and places proxy
	mux.HandleFunc("POST "+GooglePlacesPath, rt.Proxy.Forward(GooglePlacesPath))
	mux.HandleFunc("POST "+RegenerateStepPath, rt.Proxy.Forward(RegenerateStepPath))
	mux.HandleFunc("POST "+GenerateAdventurePath, rt.Proxy.Forward(GenerateAdventurePath))

	// Placeholder images
	mux.HandleFunc("GET /api/placeholder", Placeholder)
	mux.HandleFunc("GET /api/placeholder/{width}", Placeholder)
	mux.HandleFunc("GET /api/placeholder/{width}/{height}", Placeholder)

	mux.HandleFunc("/", NotFound)
}

// NotFound answers unknown routes with the standard JSON error body
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, model.NewNotFoundError("Route"))
}
