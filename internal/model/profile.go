package model

import "time"

// Subscription values granted by the privilege update
const (
	SubscriptionTierPro      = "pro"
	SubscriptionStatusActive = "active"

	PrivilegesUpdatedMessage = "User privileges updated successfully"
)

// Profile holds the subscription entitlements of a user
type Profile struct {
	ID                 string    `json:"id" db:"id"`
	SubscriptionTier   string    `json:"subscription_tier" db:"subscription_tier"`
	SubscriptionStatus string    `json:"subscription_status" db:"subscription_status"`
	IsPro              bool      `json:"is_pro" db:"is_pro"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// NewProProfile builds the fixed pro payload written by the privilege update
func NewProProfile(userID string, now time.Time) *Profile {
	return &Profile{
		ID:                 userID,
		SubscriptionTier:   SubscriptionTierPro,
		SubscriptionStatus: SubscriptionStatusActive,
		IsPro:              true,
		UpdatedAt:          now,
	}
}

// UpdatePrivilegesRequest is the body of POST /api/admin/update-privileges
type UpdatePrivilegesRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// UpdatePrivilegesResponse reports the upserted profile
type UpdatePrivilegesResponse struct {
	Message string   `json:"message"`
	Profile *Profile `json:"profile"`
}
