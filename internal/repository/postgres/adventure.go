package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/motionhq/motion/api/internal/model"
)

const adventureColumns = `id, user_id, title, description, estimated_duration, estimated_cost,
	steps, created_at, scheduled_for, is_completed, is_favorite`

// AdventureRepository handles adventure data access
type AdventureRepository struct {
	db *sqlx.DB
}

// NewAdventureRepository creates a new adventure repository
func NewAdventureRepository(db *sqlx.DB) *AdventureRepository {
	return &AdventureRepository{db: db}
}

// GetByID retrieves an adventure by ID
func (r *AdventureRepository) GetByID(ctx context.Context, id string) (*model.Adventure, error) {
	query := `SELECT ` + adventureColumns + ` FROM adventures WHERE id = $1`

	var adventure model.Adventure
	if err := r.db.GetContext(ctx, &adventure, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}
	return &adventure, nil
}

// ListByUser retrieves a user's adventures, newest first
func (r *AdventureRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Adventure, error) {
	query := `SELECT ` + adventureColumns + ` FROM adventures
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	adventures := []*model.Adventure{}
	if err := r.db.SelectContext(ctx, &adventures, query, userID, limit); err != nil {
		return nil, wrapQueryError(err)
	}
	return adventures, nil
}

// Create inserts a new adventure
func (r *AdventureRepository) Create(ctx context.Context, adventure *model.Adventure) error {
	query := `INSERT INTO adventures (` + adventureColumns + `)
		VALUES (:id, :user_id, :title, :description, :estimated_duration, :estimated_cost,
			:steps, :created_at, :scheduled_for, :is_completed, :is_favorite)`

	if _, err := r.db.NamedExecContext(ctx, query, adventure); err != nil {
		return wrapQueryError(err)
	}
	return nil
}

// Update applies the non-nil patch fields and returns the updated row
func (r *AdventureRepository) Update(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error) {
	query := `UPDATE adventures SET
			is_favorite = COALESCE($2, is_favorite),
			is_completed = COALESCE($3, is_completed),
			scheduled_for = COALESCE($4, scheduled_for)
		WHERE id = $1
		RETURNING ` + adventureColumns

	var adventure model.Adventure
	err := r.db.GetContext(ctx, &adventure, query, id, patch.IsFavorite, patch.IsCompleted, patch.ScheduledFor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}
	return &adventure, nil
}

// Delete removes an adventure and reports whether it existed
func (r *AdventureRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM adventures WHERE id = $1`, id)
	if err != nil {
		return false, wrapQueryError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, wrapQueryError(err)
	}
	return affected > 0, nil
}
