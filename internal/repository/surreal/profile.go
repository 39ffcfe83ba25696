package surreal

import (
	"context"
	"errors"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// ProfileRepository handles profile data access
type ProfileRepository struct {
	db database.Database
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db database.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert creates the profile record or merges into the existing one
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	query := `
		UPSERT $rid MERGE {
			subscription_tier: $subscription_tier,
			subscription_status: $subscription_status,
			is_pro: $is_pro,
			updated_at: $updated_at
		} RETURN AFTER
	`
	vars := map[string]interface{}{
		"rid":                 recordID(tableProfiles, profile.ID),
		"subscription_tier":   profile.SubscriptionTier,
		"subscription_status": profile.SubscriptionStatus,
		"is_pro":              profile.IsPro,
		"updated_at":          profile.UpdatedAt,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	if len(records) == 0 {
		return nil, errors.New("upsert returned no profile")
	}

	data := records[0]
	return &model.Profile{
		ID:                 recordKey(data["id"]),
		SubscriptionTier:   getString(data, "subscription_tier"),
		SubscriptionStatus: getString(data, "subscription_status"),
		IsPro:              getBool(data, "is_pro"),
		UpdatedAt:          getTimeValue(data, "updated_at"),
	}, nil
}
