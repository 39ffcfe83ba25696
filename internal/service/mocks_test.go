package service

import (
	"context"
	"time"

	"github.com/motionhq/motion/api/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockAdventureRepo struct {
	getByIDFunc    func(ctx context.Context, id string) (*model.Adventure, error)
	listByUserFunc func(ctx context.Context, userID string, limit int) ([]*model.Adventure, error)
	createFunc     func(ctx context.Context, adventure *model.Adventure) error
	updateFunc     func(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error)
	deleteFunc     func(ctx context.Context, id string) (bool, error)
}

func (m *mockAdventureRepo) GetByID(ctx context.Context, id string) (*model.Adventure, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAdventureRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Adventure, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockAdventureRepo) Create(ctx context.Context, adventure *model.Adventure) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, adventure)
	}
	return nil
}

func (m *mockAdventureRepo) Update(ctx context.Context, id string, patch *model.AdventurePatch) (*model.Adventure, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockAdventureRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}

type mockReviewRepo struct {
	listByCommunityFunc func(ctx context.Context, communityID string, limit int) ([]*model.CommunityReview, error)
	createFunc          func(ctx context.Context, review *model.CommunityReview) error
}

func (m *mockReviewRepo) ListByCommunity(ctx context.Context, communityID string, limit int) ([]*model.CommunityReview, error) {
	if m.listByCommunityFunc != nil {
		return m.listByCommunityFunc(ctx, communityID, limit)
	}
	return nil, nil
}

func (m *mockReviewRepo) Create(ctx context.Context, review *model.CommunityReview) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, review)
	}
	return nil
}

type mockProfileRepo struct {
	upsertFunc func(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, profile)
	}
	return profile, nil
}

type mockAlbumRepo struct {
	getByIDFunc    func(ctx context.Context, id string) (*model.Album, error)
	listByUserFunc func(ctx context.Context, userID string, limit int) ([]*model.Album, error)
	createFunc     func(ctx context.Context, album *model.Album) error
}

func (m *mockAlbumRepo) GetByID(ctx context.Context, id string) (*model.Album, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAlbumRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Album, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockAlbumRepo) Create(ctx context.Context, album *model.Album) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, album)
	}
	return nil
}

// ============================================================================
// Helper Functions
// ============================================================================

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func ptr[T any](v T) *T {
	return &v
}
