package surreal

import (
	"context"
	"errors"
	"fmt"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// AdventureRepository handles adventure data access
type AdventureRepository struct {
	db database.Database
}

// NewAdventureRepository creates a new adventure repository
func NewAdventureRepository(db database.Database) *AdventureRepository {
	return &AdventureRepository{db: db}
}

// GetByID retrieves an adventure by ID
func (r *AdventureRepository) GetByID(ctx context.Context, id string) (*model.Adventure, error) {
	query := `SELECT * FROM $rid`
	vars := map[string]interface{}{"rid": recordID(tableAdventures, id)}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return parseAdventure(data)
}

// ListByUser retrieves a user's adventures, newest first
func (r *AdventureRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Adventure, error) {
	query := `
		SELECT * FROM adventures
		WHERE user_id = $user_id
		ORDER BY created_at DESC
		LIMIT $limit
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	adventures := make([]*model.Adventure, 0, len(records))
	for _, data := range records {
		adventure, err := parseAdventure(data)
		if err != nil {
			return nil, err
		}
		adventures = append(adventures, adventure)
	}
	return adventures, nil
}

// Create creates a new adventure
func (r *AdventureRepository) Create(ctx context.Context, adventure *model.Adventure) error {
	query := `
		CREATE $rid CONTENT {
			user_id: $user_id,
			title: $title,
			description: $description,
			estimated_duration: $estimated_duration,
			estimated_cost: $estimated_cost,
			steps: $steps,
			created_at: $created_at,
			scheduled_for: $scheduled_for,
			is_completed: $is_completed,
			is_favorite: $is_favorite
		}
	`

	steps := adventure.Steps
	if steps == nil {
		steps = model.AdventureSteps{}
	}

	vars := map[string]interface{}{
		"rid":                recordID(tableAdventures, adventure.ID),
		"user_id":            adventure.UserID,
		"title":              adventure.Title,
		"description":        adventure.Description,
		"estimated_duration": adventure.EstimatedDuration,
		"estimated_cost":     adventure.EstimatedCost,
		"steps":              []model.AdventureStep(steps),
		"created_at":         adventure.CreatedAt,
		"scheduled_for":      adventure.ScheduledFor,
		"is_completed":       adventure.IsCompleted,
		"is_favorite":        adventure.IsFavorite,
	}

	return r.db.Execute(ctx, query, vars)
}

// Update merges the non-nil patch fields into an existing adventure
func (r *AdventureRepository) Update(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error) {
	changes := map[string]interface{}{}
	if patch.IsFavorite != nil {
		changes["is_favorite"] = *patch.IsFavorite
	}
	if patch.IsCompleted != nil {
		changes["is_completed"] = *patch.IsCompleted
	}
	if patch.ScheduledFor != nil {
		changes["scheduled_for"] = *patch.ScheduledFor
	}

	// UPDATE on a specific record does not create it
	query := `UPDATE $rid MERGE $changes RETURN AFTER`
	vars := map[string]interface{}{
		"rid":     recordID(tableAdventures, id),
		"changes": changes,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	if len(records) == 0 {
		return nil, nil
	}
	return parseAdventure(records[0])
}

// Delete deletes an adventure and reports whether it existed
func (r *AdventureRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE $rid RETURN BEFORE`
	vars := map[string]interface{}{"rid": recordID(tableAdventures, id)}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}
	return len(extractQueryResults(result)) > 0, nil
}

func parseAdventure(data map[string]interface{}) (*model.Adventure, error) {
	adventure := &model.Adventure{
		ID:                recordKey(data["id"]),
		UserID:            getString(data, "user_id"),
		Title:             getString(data, "title"),
		Description:       getString(data, "description"),
		EstimatedDuration: getStringPtr(data, "estimated_duration"),
		EstimatedCost:     getStringPtr(data, "estimated_cost"),
		CreatedAt:         getTimeValue(data, "created_at"),
		ScheduledFor:      getTime(data, "scheduled_for"),
		IsCompleted:       getBoolPtr(data, "is_completed"),
		IsFavorite:        getBoolPtr(data, "is_favorite"),
	}

	if err := decodeField(data, "steps", &adventure.Steps); err != nil {
		return nil, fmt.Errorf("%w: decode steps: %v", database.ErrQuery, err)
	}
	return adventure, nil
}
