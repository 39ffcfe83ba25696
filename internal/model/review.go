package model

import "time"

// MaxReviewsPerListing caps how many reviews a listing returns
const MaxReviewsPerListing = 100

// CommunityReview is a user rating and comment on a shared adventure
type CommunityReview struct {
	ID                   string    `json:"id" db:"id"`
	UserID               string    `json:"user_id" db:"user_id"`
	CommunityAdventureID string    `json:"community_adventure_id" db:"community_adventure_id"`
	Rating               float64   `json:"rating" db:"rating"`
	Text                 string    `json:"text" db:"text"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest is the body of POST /api/community-adventures/reviews.
// Rating is a pointer so a missing value is distinguishable from zero.
type CreateReviewRequest struct {
	UserID      string   `json:"userId" validate:"required"`
	CommunityID string   `json:"communityId" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
	Text        string   `json:"text"`
}

// ReviewSummary aggregates the ratings of one community adventure
type ReviewSummary struct {
	CommunityID   string  `json:"communityId"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// ReviewResponse wraps a single review
type ReviewResponse struct {
	Review *CommunityReview `json:"review"`
}

// ReviewListResponse wraps a list of reviews
type ReviewListResponse struct {
	Reviews []*CommunityReview `json:"reviews"`
}

// ReviewSummaryResponse wraps a review summary
type ReviewSummaryResponse struct {
	Summary *ReviewSummary `json:"summary"`
}
