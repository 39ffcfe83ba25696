package supabase

import (
	"context"
	"errors"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// ProfileRepository handles profile data access
type ProfileRepository struct {
	client *database.SupabaseClient
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(client *database.SupabaseClient) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// Upsert inserts the profile or merges it into the existing row with the same id
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	body, err := r.client.Upsert(ctx, tableProfiles, profile, "id")
	if err != nil {
		return nil, err
	}

	stored, err := firstRow[model.Profile](body)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.New("upsert returned no profile")
	}
	return stored, nil
}
