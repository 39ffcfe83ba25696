package service

import (
	"context"
	"errors"
	"testing"

	"github.com/motionhq/motion/api/internal/model"
)

// ============================================================================
// GetAdventure Tests
// ============================================================================

func TestGetAdventure_EmptyID(t *testing.T) {
	t.Parallel()
	svc := NewAdventureService(AdventureServiceConfig{Repo: &mockAdventureRepo{}})

	_, err := svc.GetAdventure(context.Background(), "  ")
	if !errors.Is(err, ErrAdventureIDRequired) {
		t.Errorf("expected ErrAdventureIDRequired, got %v", err)
	}
}

func TestGetAdventure_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewAdventureService(AdventureServiceConfig{Repo: &mockAdventureRepo{}})

	_, err := svc.GetAdventure(context.Background(), "missing")
	if !errors.Is(err, ErrAdventureNotFound) {
		t.Errorf("expected ErrAdventureNotFound, got %v", err)
	}
}

func TestGetAdventure_StoreError(t *testing.T) {
	t.Parallel()
	storeErr := errors.New("connection refused")
	repo := &mockAdventureRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Adventure, error) {
			return nil, storeErr
		},
	}
	svc := NewAdventureService(AdventureServiceConfig{Repo: repo})

	_, err := svc.GetAdventure(context.Background(), "a1")
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, ErrAdventureNotFound) {
		t.Error("store error must not look like not found")
	}
}

func TestGetAdventure_Found(t *testing.T) {
	t.Parallel()
	repo := &mockAdventureRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Adventure, error) {
			return &model.Adventure{ID: id, Title: "Picnic"}, nil
		},
	}
	svc := NewAdventureService(AdventureServiceConfig{Repo: repo})

	adv, err := svc.GetAdventure(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adv.ID != "a1" || adv.Title != "Picnic" {
		t.Errorf("unexpected adventure: %+v", adv)
	}
}

// ============================================================================
// ListAdventures Tests
// ============================================================================

func TestListAdventures_RequiresUser(t *testing.T) {
	t.Parallel()
	svc := NewAdventureService(AdventureServiceConfig{Repo: &mockAdventureRepo{}})

	if _, err := svc.ListAdventures(context.Background(), ""); !errors.Is(err, ErrUserIDRequired) {
		t.Errorf("expected ErrUserIDRequired, got %v", err)
	}
}

func TestListAdventures_UsesCap(t *testing.T) {
	t.Parallel()
	var gotLimit int
	repo := &mockAdventureRepo{
		listByUserFunc: func(ctx context.Context, userID string, limit int) ([]*model.Adventure, error) {
			gotLimit = limit
			return []*model.Adventure{{ID: "a1"}}, nil
		},
	}
	svc := NewAdventureService(AdventureServiceConfig{Repo: repo})

	list, err := svc.ListAdventures(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != model.MaxAdventuresPerList {
		t.Errorf("limit = %d, want %d", gotLimit, model.MaxAdventuresPerList)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 adventure, got %d", len(list))
	}
}

// ============================================================================
// CreateAdventure Tests
// ============================================================================

func TestCreateAdventure_PopulatesServerFields(t *testing.T) {
	t.Parallel()
	var stored *model.Adventure
	repo := &mockAdventureRepo{
		createFunc: func(ctx context.Context, adventure *model.Adventure) error {
			stored = adventure
			return nil
		},
	}
	svc := NewAdventureService(AdventureServiceConfig{Repo: repo, Clock: fixedClock})

	adv, err := svc.CreateAdventure(context.Background(), &model.CreateAdventureRequest{
		UserID: "u1",
		Title:  "<b>Sunset</b> walk",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != adv {
		t.Error("expected the stored adventure to be returned")
	}
	if adv.ID == "" {
		t.Error("expected generated ID")
	}
	if adv.Title != "Sunset walk" {
		t.Errorf("title = %q, want sanitized", adv.Title)
	}
	if !adv.CreatedAt.Equal(fixedNow) {
		t.Errorf("created_at = %v, want %v", adv.CreatedAt, fixedNow)
	}
	if adv.Steps == nil {
		t.Error("expected empty steps, got nil")
	}
	if adv.IsFavorite == nil || *adv.IsFavorite {
		t.Error("expected is_favorite false")
	}
}

func TestCreateAdventure_StoreError(t *testing.T) {
	t.Parallel()
	repo := &mockAdventureRepo{
		createFunc: func(ctx context.Context, adventure *model.Adventure) error {
			return errors.New("insert failed")
		},
	}
	svc := NewAdventureService(AdventureServiceConfig{Repo: repo})

	if _, err := svc.CreateAdventure(context.Background(), &model.CreateAdventureRequest{UserID: "u", Title: "t"}); err == nil {
		t.Error("expected error")
	}
}

// ============================================================================
// UpdateAdventure / DeleteAdventure Tests
// ============================================================================

func TestUpdateAdventure_Empty(t *testing.T) {
	t.Parallel()
	svc := NewAdventureService(AdventureServiceConfig{Repo: &mockAdventureRepo{}})

	_, err := svc.UpdateAdventure(context.Background(), "a1", &model.UpdateAdventureRequest{})
	if !errors.Is(err, ErrNoAdventureChanges) {
		t.Errorf("expected ErrNoAdventureChanges, got %v", err)
	}
}

func TestUpdateAdventure_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewAdventureService(AdventureServiceConfig{Repo: &mockAdventureRepo{}})

	_, err := svc.UpdateAdventure(context.Background(), "a1", &model.UpdateAdventureRequest{IsFavorite: ptr(true)})
	if !errors.Is(err, ErrAdventureNotFound) {
		t.Errorf("expected ErrAdventureNotFound, got %v", err)
	}
}

func TestUpdateAdventure_PassesPatch(t *testing.T) {
	t.Parallel()
	var gotPatch *model.AdventurePatch
	repo := &mockAdventureRepo{
		updateFunc: func(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error) {
			gotPatch = patch
			return &model.Adventure{ID: id, IsFavorite: patch.IsFavorite}, nil
		},
	}
	svc := NewAdventureService(AdventureServiceConfig{Repo: repo})

	adv, err := svc.UpdateAdventure(context.Background(), "a1", &model.UpdateAdventureRequest{IsFavorite: ptr(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPatch.IsFavorite == nil || !*gotPatch.IsFavorite || gotPatch.IsCompleted != nil {
		t.Errorf("unexpected patch: %+v", gotPatch)
	}
	if !*adv.IsFavorite {
		t.Error("expected favorite adventure")
	}
}

func TestDeleteAdventure(t *testing.T) {
	t.Parallel()
	existing := map[string]bool{"a1": true}
	repo := &mockAdventureRepo{
		deleteFunc: func(ctx context.Context, id string) (bool, error) {
			ok := existing[id]
			delete(existing, id)
			return ok, nil
		},
	}
	svc := NewAdventureService(AdventureServiceConfig{Repo: repo})

	if err := svc.DeleteAdventure(context.Background(), "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteAdventure(context.Background(), "a1"); !errors.Is(err, ErrAdventureNotFound) {
		t.Errorf("expected ErrAdventureNotFound on second delete, got %v", err)
	}
}
