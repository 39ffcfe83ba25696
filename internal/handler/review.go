package handler

import (
	"net/http"

	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/service"
)

// ReviewHandler handles community adventure review endpoints
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListReviews handles GET /api/community-adventures/reviews?communityId=
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListReviews(r.Context(), r.URL.Query().Get("communityId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch reviews")
		return
	}

	WriteJSON(w, http.StatusOK, model.ReviewListResponse{Reviews: reviews})
}

// CreateReview handles POST /api/community-adventures/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReviewRequest
	if apiErr := DecodeAndValidate(w, r, &req); apiErr != nil {
		WriteError(w, apiErr)
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create review")
		return
	}

	WriteJSON(w, http.StatusCreated, model.ReviewResponse{Review: review})
}

// GetSummary handles GET /api/community-adventures/reviews/summary?communityId=
func (h *ReviewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reviewService.GetSummary(r.Context(), r.URL.Query().Get("communityId"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to summarize reviews")
		return
	}

	WriteJSON(w, http.StatusOK, model.ReviewSummaryResponse{Summary: summary})
}
