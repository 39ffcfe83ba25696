package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/motionhq/motion/api/internal/model"
)

const reviewColumns = `id, user_id, community_adventure_id, rating, text, created_at`

// ReviewRepository handles community review data access
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByCommunity retrieves the newest reviews of a community adventure
func (r *ReviewRepository) ListByCommunity(ctx context.Context, communityID string, limit int) ([]*model.CommunityReview, error) {
	query := `SELECT ` + reviewColumns + ` FROM community_adventure_reviews
		WHERE community_adventure_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	reviews := []*model.CommunityReview{}
	if err := r.db.SelectContext(ctx, &reviews, query, communityID, limit); err != nil {
		return nil, wrapQueryError(err)
	}
	return reviews, nil
}

// Create inserts a review and replaces it with the stored row
func (r *ReviewRepository) Create(ctx context.Context, review *model.CommunityReview) error {
	query := `INSERT INTO community_adventure_reviews (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reviewColumns

	var stored model.CommunityReview
	err := r.db.GetContext(ctx, &stored, query,
		review.ID, review.UserID, review.CommunityAdventureID, review.Rating, review.Text, review.CreatedAt)
	if err != nil {
		return wrapQueryError(err)
	}
	*review = stored
	return nil
}
