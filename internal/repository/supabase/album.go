package supabase

import (
	"context"
	"errors"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// AlbumRepository handles album data access
type AlbumRepository struct {
	client *database.SupabaseClient
}

// NewAlbumRepository creates a new album repository
func NewAlbumRepository(client *database.SupabaseClient) *AlbumRepository {
	return &AlbumRepository{client: client}
}

// GetByID retrieves an album by ID
func (r *AlbumRepository) GetByID(ctx context.Context, id string) (*model.Album, error) {
	query := byID(id)
	query.Set("select", "*")
	query.Set("limit", "1")

	body, err := r.client.Select(ctx, tableAlbums, query)
	if err != nil {
		return nil, err
	}
	return firstRow[model.Album](body)
}

// ListByUser retrieves a user's albums, newest first
func (r *AlbumRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Album, error) {
	body, err := r.client.Select(ctx, tableAlbums, newestFirst("user_id", userID, limit))
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Album](body)
}

// Create inserts a new album
func (r *AlbumRepository) Create(ctx context.Context, album *model.Album) error {
	if album.AdventureIDs == nil {
		album.AdventureIDs = []string{}
	}

	body, err := r.client.Insert(ctx, tableAlbums, album)
	if err != nil {
		return err
	}

	stored, err := firstRow[model.Album](body)
	if err != nil {
		return err
	}
	if stored == nil {
		return errors.New("insert returned no album")
	}
	*album = *stored
	return nil
}
