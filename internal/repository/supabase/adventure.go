package supabase

import (
	"context"
	"errors"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// AdventureRepository handles adventure data access
type AdventureRepository struct {
	client *database.SupabaseClient
}

// NewAdventureRepository creates a new adventure repository
func NewAdventureRepository(client *database.SupabaseClient) *AdventureRepository {
	return &AdventureRepository{client: client}
}

// GetByID retrieves an adventure by ID
func (r *AdventureRepository) GetByID(ctx context.Context, id string) (*model.Adventure, error) {
	query := byID(id)
	query.Set("select", "*")
	query.Set("limit", "1")

	body, err := r.client.Select(ctx, tableAdventures, query)
	if err != nil {
		return nil, err
	}
	return firstRow[model.Adventure](body)
}

// ListByUser retrieves a user's adventures, newest first
func (r *AdventureRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Adventure, error) {
	body, err := r.client.Select(ctx, tableAdventures, newestFirst("user_id", userID, limit))
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Adventure](body)
}

// Create inserts a new adventure
func (r *AdventureRepository) Create(ctx context.Context, adventure *model.Adventure) error {
	body, err := r.client.Insert(ctx, tableAdventures, adventure)
	if err != nil {
		return err
	}

	stored, err := firstRow[model.Adventure](body)
	if err != nil {
		return err
	}
	if stored == nil {
		return errors.New("insert returned no adventure")
	}
	*adventure = *stored
	return nil
}

// Update applies a partial update and returns the updated row
func (r *AdventureRepository) Update(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error) {
	body, err := r.client.Update(ctx, tableAdventures, byID(id), patch)
	if err != nil {
		return nil, err
	}
	return firstRow[model.Adventure](body)
}

// Delete removes an adventure and reports whether it existed
func (r *AdventureRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := byID(id)
	query.Set("select", "id")

	body, err := r.client.Delete(ctx, tableAdventures, query)
	if err != nil {
		return false, err
	}
	rows, err := decodeRows[struct {
		ID string `json:"id"`
	}](body)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
