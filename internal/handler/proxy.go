package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/motionhq/motion/api/internal/middleware"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/service"
)

// Backend paths served through the proxy
const (
	GooglePlacesPath      = "/api/ai/google-places"
	RegenerateStepPath    = "/api/ai/regenerate-step"
	GenerateAdventurePath = "/api/ai/generate-adventures"
)

// ProxyHandler relays AI and places requests to the backend
type ProxyHandler struct {
	backend *service.BackendClient
	metrics *middleware.Metrics
}

// NewProxyHandler creates a new proxy handler; metrics may be nil
func NewProxyHandler(backend *service.BackendClient, metrics *middleware.Metrics) *ProxyHandler {
	return &ProxyHandler{
		backend: backend,
		metrics: metrics,
	}
}

// Forward returns a handler that POSTs the request body to path on the backend
// and relays the reply.
func (h *ProxyHandler) Forward(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				WriteError(w, model.NewBadRequestError("request body too large"))
				return
			}
			WriteError(w, model.NewBadRequestError("invalid request body"))
			return
		}
		if !json.Valid(body) {
			WriteError(w, model.NewBadRequestError("request body must be valid JSON"))
			return
		}

		resp, err := h.backend.Forward(r.Context(), path, body, middleware.GetRequestID(r.Context()))
		if err != nil {
			h.observe(path, "error")
			writeServiceError(w, r, err, "Failed to reach backend")
			return
		}
		h.observe(path, strconv.Itoa(resp.Status))

		w.Header().Set("Content-Type", resp.ContentType)
		w.WriteHeader(resp.Status)
		_, _ = w.Write(resp.Body)
	}
}

func (h *ProxyHandler) observe(path, outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveBackendRequest(path, outcome)
	}
}
