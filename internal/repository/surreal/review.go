package surreal

import (
	"context"
	"errors"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// ReviewRepository handles community review data access
type ReviewRepository struct {
	db database.Database
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db database.Database) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByCommunity retrieves the newest reviews of a community adventure
func (r *ReviewRepository) ListByCommunity(ctx context.Context, communityID string, limit int) ([]*model.CommunityReview, error) {
	query := `
		SELECT * FROM community_adventure_reviews
		WHERE community_adventure_id = $community_id
		ORDER BY created_at DESC
		LIMIT $limit
	`
	vars := map[string]interface{}{
		"community_id": communityID,
		"limit":        limit,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	reviews := make([]*model.CommunityReview, 0, len(records))
	for _, data := range records {
		reviews = append(reviews, parseReview(data))
	}
	return reviews, nil
}

// Create creates a review and replaces it with the stored record
func (r *ReviewRepository) Create(ctx context.Context, review *model.CommunityReview) error {
	query := `
		CREATE $rid CONTENT {
			user_id: $user_id,
			community_adventure_id: $community_id,
			rating: $rating,
			text: $text,
			created_at: $created_at
		}
	`
	vars := map[string]interface{}{
		"rid":          recordID(tableReviews, review.ID),
		"user_id":      review.UserID,
		"community_id": review.CommunityAdventureID,
		"rating":       review.Rating,
		"text":         review.Text,
		"created_at":   review.CreatedAt,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := extractQueryResults(result)
	if len(records) == 0 {
		return errors.New("create returned no review")
	}
	*review = *parseReview(records[0])
	return nil
}

func parseReview(data map[string]interface{}) *model.CommunityReview {
	return &model.CommunityReview{
		ID:                   recordKey(data["id"]),
		UserID:               getString(data, "user_id"),
		CommunityAdventureID: getString(data, "community_adventure_id"),
		Rating:               getFloat(data, "rating"),
		Text:                 getString(data, "text"),
		CreatedAt:            getTimeValue(data, "created_at"),
	}
}
