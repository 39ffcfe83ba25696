package model

import "time"

// MaxAlbumsPerList caps album listings
const MaxAlbumsPerList = 100

// Album groups saved adventures under a title
type Album struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	CoverImage   *string   `json:"cover_image" db:"cover_image"`
	AdventureIDs []string  `json:"adventure_ids" db:"adventure_ids"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CreateAlbumRequest is the body of POST /api/albums
type CreateAlbumRequest struct {
	UserID       string   `json:"userId" validate:"required"`
	Title        string   `json:"title" validate:"required,max=120"`
	Description  string   `json:"description" validate:"max=1000"`
	CoverImage   *string  `json:"coverImage,omitempty" validate:"omitempty,url"`
	AdventureIDs []string `json:"adventureIds,omitempty" validate:"max=100"`
}

// AlbumResponse wraps a single album
type AlbumResponse struct {
	Album *Album `json:"album"`
}

// AlbumListResponse wraps a list of albums
type AlbumListResponse struct {
	Albums []*Album `json:"albums"`
}
