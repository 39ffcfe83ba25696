package surreal

import (
	"context"
	"errors"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/model"
)

// AlbumRepository handles album data access
type AlbumRepository struct {
	db database.Database
}

// NewAlbumRepository creates a new album repository
func NewAlbumRepository(db database.Database) *AlbumRepository {
	return &AlbumRepository{db: db}
}

// GetByID retrieves an album by ID
func (r *AlbumRepository) GetByID(ctx context.Context, id string) (*model.Album, error) {
	query := `SELECT * FROM $rid`
	vars := map[string]interface{}{"rid": recordID(tableAlbums, id)}

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
	return parseAlbum(data), nil
}

// ListByUser retrieves a user's albums, newest first
func (r *AlbumRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Album, error) {
	query := `
		SELECT * FROM albums
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
	albums := make([]*model.Album, 0, len(records))
	for _, data := range records {
		albums = append(albums, parseAlbum(data))
	}
	return albums, nil
}

// Create creates a new album
func (r *AlbumRepository) Create(ctx context.Context, album *model.Album) error {
	query := `
		CREATE $rid CONTENT {
			user_id: $user_id,
			title: $title,
			description: $description,
			cover_image: $cover_image,
			adventure_ids: $adventure_ids,
			created_at: $created_at
		}
	`

	ids := album.AdventureIDs
	if ids == nil {
		ids = []string{}
	}

	vars := map[string]interface{}{
		"rid":           recordID(tableAlbums, album.ID),
		"user_id":       album.UserID,
		"title":         album.Title,
		"description":   album.Description,
		"cover_image":   album.CoverImage,
		"adventure_ids": ids,
		"created_at":    album.CreatedAt,
	}

	return r.db.Execute(ctx, query, vars)
}

func parseAlbum(data map[string]interface{}) *model.Album {
	return &model.Album{
		ID:           recordKey(data["id"]),
		UserID:       getString(data, "user_id"),
		Title:        getString(data, "title"),
		Description:  getString(data, "description"),
		CoverImage:   getStringPtr(data, "cover_image"),
		AdventureIDs: getStringSlice(data, "adventure_ids"),
		CreatedAt:    getTimeValue(data, "created_at"),
	}
}
