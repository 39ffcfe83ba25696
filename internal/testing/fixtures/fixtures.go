package fixtures

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/motionhq/motion/api/internal/model"
)

// CreatedAt is the timestamp given to every fixture unless overridden
var CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ============================================================================
// Adventure Fixtures
// ============================================================================

// AdventureOpt customizes an adventure
type AdventureOpt func(*model.Adventure)

// WithTitle sets the adventure title
func WithTitle(title string) AdventureOpt {
	return func(a *model.Adventure) { a.Title = title }
}

// WithOwner sets the adventure owner
func WithOwner(userID string) AdventureOpt {
	return func(a *model.Adventure) { a.UserID = userID }
}

// WithSteps sets the adventure steps
func WithSteps(steps ...model.AdventureStep) AdventureOpt {
	return func(a *model.Adventure) { a.Steps = steps }
}

// WithFavorite marks the adventure as a favorite
func WithFavorite() AdventureOpt {
	return func(a *model.Adventure) {
		fav := true
		a.IsFavorite = &fav
	}
}

// Adventure builds a stored adventure row with unset optional columns
func Adventure(opts ...AdventureOpt) *model.Adventure {
	a := &model.Adventure{
		ID:          randomID(),
		UserID:      "user_" + randomID(),
		Title:       "Sunset picnic",
		Description: "Blankets, snacks and a view",
		CreatedAt:   CreatedAt,
	}
	for _, fn := range opts {
		fn(a)
	}
	return a
}

// ============================================================================
// Review Fixtures
// ============================================================================

// ReviewOpt customizes a review
type ReviewOpt func(*model.CommunityReview)

// WithRating sets the review rating
func WithRating(rating float64) ReviewOpt {
	return func(r *model.CommunityReview) { r.Rating = rating }
}

// WithCreatedAt sets the review timestamp
func WithCreatedAt(t time.Time) ReviewOpt {
	return func(r *model.CommunityReview) { r.CreatedAt = t }
}

// Review builds a review of the given community adventure
func Review(communityID string, opts ...ReviewOpt) *model.CommunityReview {
	r := &model.CommunityReview{
		ID:                   randomID(),
		UserID:               "user_" + randomID(),
		CommunityAdventureID: communityID,
		Rating:               4,
		Text:                 "Would go again",
		CreatedAt:            CreatedAt,
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// ============================================================================
// Album Fixtures
// ============================================================================

// Album builds an album owned by userID containing adventureIDs
func Album(userID string, adventureIDs ...string) *model.Album {
	if adventureIDs == nil {
		adventureIDs = []string{}
	}
	return &model.Album{
		ID:           randomID(),
		UserID:       userID,
		Title:        "Weekend plans",
		AdventureIDs: adventureIDs,
		CreatedAt:    CreatedAt,
	}
}
