// Package service implements the business logic layer for the Motion API.
//
// Services sit between HTTP handlers and data access. They validate
// identifiers, stamp server timestamps, sanitize free text and translate
// missing rows into sentinel errors.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces (AdventureRepository,
// ReviewRepository, AlbumRepository, ProfileRepository). The drivers in
// repository/supabase, repository/postgres and repository/surreal implement
// them, and tests substitute in-memory fakes.
//
// # Error Handling
//
// Sentinel errors live in errors.go:
//
//	var (
//	    ErrAdventureNotFound  = errors.New("adventure not found")
//	    ErrBackendUnreachable = errors.New("failed to reach backend")
//	)
//
// # Example Usage
//
//	svc := NewAdventureService(AdventureServiceConfig{Repo: adventureRepository})
//	adventure, err := svc.GetAdventure(ctx, id)
package service
