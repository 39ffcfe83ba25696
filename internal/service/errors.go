package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Request Errors =====
var (
	ErrUserIDRequired      = errors.New("userId is required")
	ErrCommunityIDRequired = errors.New("communityId is required")
)

// ===== Adventure Errors =====
var (
	ErrAdventureNotFound   = errors.New("adventure not found")
	ErrAdventureIDRequired = errors.New("adventure ID is required")
	ErrNoAdventureChanges  = errors.New("at least one of isFavorite, isCompleted or scheduledFor is required")
)

// ===== Album Errors =====
var (
	ErrAlbumNotFound   = errors.New("album not found")
	ErrAlbumIDRequired = errors.New("album ID is required")
)

// ===== Backend Errors =====
var (
	ErrBackendUnreachable = errors.New("failed to reach backend")
	ErrBackendPathInvalid = errors.New("backend path must start with /")
)
