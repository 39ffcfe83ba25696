package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/motionhq/motion/api/internal/model"
)

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	// Upsert inserts the profile or merges it into the row with the same ID
	Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

// AdminService handles operator actions on user accounts
type AdminService struct {
	profiles ProfileRepository
	now      func() time.Time
}

// AdminServiceConfig holds configuration for the admin service
type AdminServiceConfig struct {
	Profiles ProfileRepository
	Clock    func() time.Time
}

// NewAdminService creates a new admin service
func NewAdminService(cfg AdminServiceConfig) *AdminService {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &AdminService{
		profiles: cfg.Profiles,
		now:      clock,
	}
}

// GrantPro writes the active pro subscription onto a user's profile.
// It does not check who is asking.
func (s *AdminService) GrantPro(ctx context.Context, userID string) (*model.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}

	profile, err := s.profiles.Upsert(ctx, model.NewProProfile(userID, s.now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("upsert profile %s: %w", userID, err)
	}
	return profile, nil
}
