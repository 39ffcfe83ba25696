package supabase

import (
	"context"
	"errors"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// ReviewRepository handles community review data access
type ReviewRepository struct {
	client *database.SupabaseClient
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(client *database.SupabaseClient) *ReviewRepository {
	return &ReviewRepository{client: client}
}

// ListByCommunity retrieves the newest reviews of a community adventure
func (r *ReviewRepository) ListByCommunity(ctx context.Context, communityID string, limit int) ([]*model.CommunityReview, error) {
	body, err := r.client.Select(ctx, tableReviews, newestFirst("community_adventure_id", communityID, limit))
	if err != nil {
		return nil, err
	}
	return decodeRows[model.CommunityReview](body)
}

// Create inserts a review and replaces it with the stored row
func (r *ReviewRepository) Create(ctx context.Context, review *model.CommunityReview) error {
	body, err := r.client.Insert(ctx, tableReviews, review)
	if err != nil {
		return err
	}

	stored, err := firstRow[model.CommunityReview](body)
	if err != nil {
		return err
	}
	if stored == nil {
		return errors.New("insert returned no review")
	}
	*review = *stored
	return nil
}
