package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/validation"
)

// AdventureRepository defines the interface for adventure storage.
// GetByID and Update return nil without error when the row does not exist.
type AdventureRepository interface {
	GetByID(ctx context.Context, id string) (*model.Adventure, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.Adventure, error)
	Create(ctx context.Context, adventure *model.Adventure) error
	Update(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AdventureService handles saved adventure business logic
type AdventureService struct {
	repo AdventureRepository
	now  func() time.Time
}

// AdventureServiceConfig holds configuration for the adventure service
type AdventureServiceConfig struct {
	Repo  AdventureRepository
	Clock func() time.Time
}

// NewAdventureService creates a new adventure service
func NewAdventureService(cfg AdventureServiceConfig) *AdventureService {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &AdventureService{
		repo: cfg.Repo,
		now:  clock,
	}
}

// GetAdventure retrieves one adventure by ID
func (s *AdventureService) GetAdventure(ctx context.Context, id string) (*model.Adventure, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrAdventureIDRequired
	}

	adventure, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get adventure %s: %w", id, err)
	}
	if adventure == nil {
		return nil, ErrAdventureNotFound
	}
	return adventure, nil
}

// ListAdventures returns a user's adventures, newest first
func (s *AdventureService) ListAdventures(ctx context.Context, userID string) ([]*model.Adventure, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}

	adventures, err := s.repo.ListByUser(ctx, userID, model.MaxAdventuresPerList)
	if err != nil {
		return nil, fmt.Errorf("list adventures: %w", err)
	}
	return adventures, nil
}

// CreateAdventure saves a generated adventure for a user
func (s *AdventureService) CreateAdventure(ctx context.Context, req *model.CreateAdventureRequest) (*model.Adventure, error) {
	notCompleted, notFavorite := false, false

	adventure := &model.Adventure{
		ID:                uuid.NewString(),
		UserID:            req.UserID,
		Title:             validation.SanitizeText(req.Title),
		Description:       validation.SanitizeText(req.Description),
		EstimatedDuration: req.EstimatedDuration,
		EstimatedCost:     req.EstimatedCost,
		Steps:             model.AdventureSteps(req.Steps),
		CreatedAt:         s.now().UTC(),
		ScheduledFor:      req.ScheduledFor,
		IsCompleted:       &notCompleted,
		IsFavorite:        &notFavorite,
	}
	if adventure.Steps == nil {
		adventure.Steps = model.AdventureSteps{}
	}

	if err := s.repo.Create(ctx, adventure); err != nil {
		return nil, fmt.Errorf("create adventure: %w", err)
	}
	return adventure, nil
}

// UpdateAdventure applies the user-controlled flags to an adventure
func (s *AdventureService) UpdateAdventure(ctx context.Context, id string, req *model.UpdateAdventureRequest) (*model.Adventure, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrAdventureIDRequired
	}
	if req.IsEmpty() {
		return nil, ErrNoAdventureChanges
	}

	adventure, err := s.repo.Update(ctx, id, req.Patch())
	if err != nil {
		return nil, fmt.Errorf("update adventure %s: %w", id, err)
	}
	if adventure == nil {
		return nil, ErrAdventureNotFound
	}
	return adventure, nil
}

// DeleteAdventure removes an adventure
func (s *AdventureService) DeleteAdventure(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrAdventureIDRequired
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete adventure %s: %w", id, err)
	}
	if !deleted {
		return ErrAdventureNotFound
	}
	return nil
}
