package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Defaults applied when a stored adventure leaves presentation fields empty
const (
	DefaultEstimatedDuration = "2-3 hours"
	DefaultEstimatedCost     = "$$"

	MaxAdventuresPerList = 50
	MaxAdventureTitleLen = 200
	MaxStepsPerAdventure = 20
)

// AdventureStep is one ordered activity within an adventure
type AdventureStep struct {
	Time        string   `json:"time,omitempty"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Address     string   `json:"address,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Cost        string   `json:"cost,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// AdventureSteps is stored as a JSON array column
type AdventureSteps []AdventureStep

// Value implements driver.Valuer
func (s AdventureSteps) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *AdventureSteps) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for adventure steps")
	}
}

// Adventure is the stored adventure row
type Adventure struct {
	ID                string         `json:"id" db:"id"`
	UserID            string         `json:"user_id" db:"user_id"`
	Title             string         `json:"title" db:"title"`
	Description       string         `json:"description" db:"description"`
	EstimatedDuration *string        `json:"estimated_duration" db:"estimated_duration"`
	EstimatedCost     *string        `json:"estimated_cost" db:"estimated_cost"`
	Steps             AdventureSteps `json:"steps" db:"steps"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	ScheduledFor      *time.Time     `json:"scheduled_for" db:"scheduled_for"`
	IsCompleted       *bool          `json:"is_completed" db:"is_completed"`
	IsFavorite        *bool          `json:"is_favorite" db:"is_favorite"`
}

// AdventureView is the presentation shape returned by the adventure routes
type AdventureView struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	EstimatedDuration string          `json:"estimatedDuration"`
	EstimatedCost     string          `json:"estimatedCost"`
	Steps             []AdventureStep `json:"steps"`
	CreatedAt         time.Time       `json:"createdAt"`
	ScheduledFor      *time.Time      `json:"scheduledFor"`
	IsCompleted       bool            `json:"isCompleted"`
	IsFavorite        bool            `json:"isFavorite"`
}

// View renames stored columns and fills in presentation defaults
func (a *Adventure) View() *AdventureView {
	v := &AdventureView{
		ID:                a.ID,
		Title:             a.Title,
		Description:       a.Description,
		EstimatedDuration: DefaultEstimatedDuration,
		EstimatedCost:     DefaultEstimatedCost,
		Steps:             []AdventureStep(a.Steps),
		CreatedAt:         a.CreatedAt,
		ScheduledFor:      a.ScheduledFor,
	}
	if a.EstimatedDuration != nil && *a.EstimatedDuration != "" {
		v.EstimatedDuration = *a.EstimatedDuration
	}
	if a.EstimatedCost != nil && *a.EstimatedCost != "" {
		v.EstimatedCost = *a.EstimatedCost
	}
	if v.Steps == nil {
		v.Steps = []AdventureStep{}
	}
	if a.IsCompleted != nil {
		v.IsCompleted = *a.IsCompleted
	}
	if a.IsFavorite != nil {
		v.IsFavorite = *a.IsFavorite
	}
	return v
}

// CreateAdventureRequest saves a generated adventure for a user
type CreateAdventureRequest struct {
	UserID            string          `json:"userId" validate:"required"`
	Title             string          `json:"title" validate:"required,max=200"`
	Description       string          `json:"description"`
	EstimatedDuration *string         `json:"estimatedDuration,omitempty"`
	EstimatedCost     *string         `json:"estimatedCost,omitempty"`
	Steps             []AdventureStep `json:"steps,omitempty" validate:"max=20,dive"`
	ScheduledFor      *time.Time      `json:"scheduledFor,omitempty"`
}

// UpdateAdventureRequest toggles the user-controlled adventure flags
type UpdateAdventureRequest struct {
	IsFavorite   *bool      `json:"isFavorite,omitempty"`
	IsCompleted  *bool      `json:"isCompleted,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

// IsEmpty reports whether the request carries no changes
func (r *UpdateAdventureRequest) IsEmpty() bool {
	return r.IsFavorite == nil && r.IsCompleted == nil && r.ScheduledFor == nil
}

// AdventurePatch is the store-shaped partial update
type AdventurePatch struct {
	IsFavorite   *bool      `json:"is_favorite,omitempty"`
	IsCompleted  *bool      `json:"is_completed,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// Patch converts the request into store column names
func (r *UpdateAdventureRequest) Patch() *AdventurePatch {
	return &AdventurePatch{
		IsFavorite:   r.IsFavorite,
		IsCompleted:  r.IsCompleted,
		ScheduledFor: r.ScheduledFor,
	}
}

// AdventureResponse wraps a single adventure
type AdventureResponse struct {
	Adventure *AdventureView `json:"adventure"`
}

// AdventureListResponse wraps a list of adventures
type AdventureListResponse struct {
	Adventures []*AdventureView `json:"adventures"`
}
