package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/motionhq/motion/api/internal/model"
)

// ProfileRepository handles profile data access
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert inserts the profile or merges it into the existing row with the same id
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	query := `INSERT INTO profiles (id, subscription_tier, subscription_status, is_pro, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			subscription_tier = EXCLUDED.subscription_tier,
			subscription_status = EXCLUDED.subscription_status,
			is_pro = EXCLUDED.is_pro,
			updated_at = EXCLUDED.updated_at
		RETURNING id, subscription_tier, subscription_status, is_pro, updated_at`

	var stored model.Profile
	err := r.db.GetContext(ctx, &stored, query,
		profile.ID, profile.SubscriptionTier, profile.SubscriptionStatus, profile.IsPro, profile.UpdatedAt)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return &stored, nil
}
