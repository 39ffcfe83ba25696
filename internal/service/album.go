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

// AlbumRepository defines the interface for album storage.
// GetByID returns nil without error when the album does not exist.
type AlbumRepository interface {
	GetByID(ctx context.Context, id string) (*model.Album, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.Album, error)
	Create(ctx context.Context, album *model.Album) error
}

// AlbumService handles album business logic
type AlbumService struct {
	repo AlbumRepository
	now  func() time.Time
}

// AlbumServiceConfig holds configuration for the album service
type AlbumServiceConfig struct {
	Repo  AlbumRepository
	Clock func() time.Time
}

// NewAlbumService creates a new album service
func NewAlbumService(cfg AlbumServiceConfig) *AlbumService {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &AlbumService{
		repo: cfg.Repo,
		now:  clock,
	}
}

// GetAlbum retrieves an album by ID
func (s *AlbumService) GetAlbum(ctx context.Context, id string) (*model.Album, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrAlbumIDRequired
	}

	album, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get album %s: %w", id, err)
	}
	if album == nil {
		return nil, ErrAlbumNotFound
	}
	return album, nil
}

// ListAlbums returns a user's albums, newest first
func (s *AlbumService) ListAlbums(ctx context.Context, userID string) ([]*model.Album, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}

	albums, err := s.repo.ListByUser(ctx, userID, model.MaxAlbumsPerList)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	if albums == nil {
		albums = []*model.Album{}
	}
	return albums, nil
}

// CreateAlbum creates an album; duplicate adventure IDs are collapsed
func (s *AlbumService) CreateAlbum(ctx context.Context, req *model.CreateAlbumRequest) (*model.Album, error) {
	album := &model.Album{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Title:        validation.SanitizeText(req.Title),
		Description:  validation.SanitizeText(req.Description),
		CoverImage:   req.CoverImage,
		AdventureIDs: dedupeIDs(req.AdventureIDs),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	return album, nil
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
