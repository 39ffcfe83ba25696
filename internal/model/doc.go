// Package model defines domain entities and data structures for the Motion API.
//
// The model package contains struct definitions for stored rows, request and
// response bodies, and the error body returned by every route.
//
// # Domain Entities
//
//   - Adventure: a saved multi-step plan, with AdventureView as its response shape
//   - CommunityReview: a rating and comment on a shared adventure
//   - Album: a titled collection of saved adventures
//   - Profile: the subscription entitlements of a user
//
// # JSON Serialization
//
// Stored rows keep the store's snake_case column names in both their json and
// db tags. Request and response types use camelCase:
//
//	type AdventureView struct {
//	    ID                string `json:"id"`
//	    EstimatedDuration string `json:"estimatedDuration"`
//	}
//
// # Error Types
//
// APIError in errors.go is the {"error": ..., "details": [...]} body.
// Constructors such as NewNotFoundError and NewValidationError set the status.
package model
