package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/motionhq/motion/api/internal/model"
)

const albumColumns = `id, user_id, title, description, cover_image, adventure_ids, created_at`

// albumRow maps the text[] column, which model.Album keeps as a plain slice
type albumRow struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	CoverImage   *string        `db:"cover_image"`
	AdventureIDs pq.StringArray `db:"adventure_ids"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *albumRow) toModel() *model.Album {
	ids := []string(r.AdventureIDs)
	if ids == nil {
		ids = []string{}
	}
	return &model.Album{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Description:  r.Description,
		CoverImage:   r.CoverImage,
		AdventureIDs: ids,
		CreatedAt:    r.CreatedAt,
	}
}

// AlbumRepository handles album data access
type AlbumRepository struct {
	db *sqlx.DB
}

// NewAlbumRepository creates a new album repository
func NewAlbumRepository(db *sqlx.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

// GetByID retrieves an album by ID
func (r *AlbumRepository) GetByID(ctx context.Context, id string) (*model.Album, error) {
	var row albumRow
	err := r.db.GetContext(ctx, &row, `SELECT `+albumColumns+` FROM albums WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}
	return row.toModel(), nil
}

// ListByUser retrieves a user's albums, newest first
func (r *AlbumRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var rows []albumRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, wrapQueryError(err)
	}

	albums := make([]*model.Album, 0, len(rows))
	for i := range rows {
		albums = append(albums, rows[i].toModel())
	}
	return albums, nil
}

// Create inserts a new album
func (r *AlbumRepository) Create(ctx context.Context, album *model.Album) error {
	query := `INSERT INTO albums (` + albumColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		album.ID, album.UserID, album.Title, album.Description, album.CoverImage,
		pq.Array(album.AdventureIDs), album.CreatedAt)
	if err != nil {
		return wrapQueryError(err)
	}
	return nil
}
