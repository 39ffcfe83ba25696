package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/validation"
)

// ReviewRepository defines the interface for community review storage
type ReviewRepository interface {
	ListByCommunity(ctx context.Context, communityID string, limit int) ([]*model.CommunityReview, error)
	Create(ctx context.Context, review *model.CommunityReview) error
}

// ReviewService handles community adventure review business logic
type ReviewService struct {
	repo ReviewRepository
	now  func() time.Time
}

// ReviewServiceConfig holds configuration for the review service
type ReviewServiceConfig struct {
	Repo  ReviewRepository
	Clock func() time.Time
}

// NewReviewService creates a new review service
func NewReviewService(cfg ReviewServiceConfig) *ReviewService {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &ReviewService{
		repo: cfg.Repo,
		now:  clock,
	}
}

// ListReviews returns the newest reviews of a community adventure
func (s *ReviewService) ListReviews(ctx context.Context, communityID string) ([]*model.CommunityReview, error) {
	if strings.TrimSpace(communityID) == "" {
		return nil, ErrCommunityIDRequired
	}

	reviews, err := s.repo.ListByCommunity(ctx, communityID, model.MaxReviewsPerListing)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []*model.CommunityReview{}
	}
	return reviews, nil
}

// CreateReview stores a review stamped with the server time
func (s *ReviewService) CreateReview(ctx context.Context, req *model.CreateReviewRequest) (*model.CommunityReview, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, ErrUserIDRequired
	}
	if strings.TrimSpace(req.CommunityID) == "" {
		return nil, ErrCommunityIDRequired
	}

	var rating float64
	if req.Rating != nil {
		rating = *req.Rating
	}

	review := &model.CommunityReview{
		ID:                   uuid.NewString(),
		UserID:               req.UserID,
		CommunityAdventureID: req.CommunityID,
		Rating:               rating,
		Text:                 validation.SanitizeText(req.Text),
		CreatedAt:            s.now().UTC(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// GetSummary aggregates the same capped listing that ListReviews returns
func (s *ReviewService) GetSummary(ctx context.Context, communityID string) (*model.ReviewSummary, error) {
	reviews, err := s.ListReviews(ctx, communityID)
	if err != nil {
		return nil, err
	}
	return SummarizeReviews(communityID, reviews), nil
}

// SummarizeReviews computes the count and mean rating, rounded to two places
func SummarizeReviews(communityID string, reviews []*model.CommunityReview) *model.ReviewSummary {
	summary := &model.ReviewSummary{CommunityID: communityID}
	if len(reviews) == 0 {
		return summary
	}

	var total float64
	for _, r := range reviews {
		total += r.Rating
	}
	summary.Count = len(reviews)
	summary.AverageRating = math.Round(total/float64(len(reviews))*100) / 100
	return summary
}
