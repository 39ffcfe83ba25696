// Package database provides the store clients behind Motion's repositories.
//
// Three drivers are available and selected by DB_DRIVER:
//   - supabase: the Supabase REST (PostgREST) API, authenticated with a project key
//   - postgres: a direct connection to the project's Postgres database
//   - surrealdb: a SurrealDB instance, used for local development
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database

import (
	"context"
	"errors"
	"fmt"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, rejected request, etc.).
	ErrQuery = errors.New("query error")

	// ErrUnknownDriver indicates DB_DRIVER names no supported store.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Driver names a store implementation
type Driver string

const (
	DriverSupabase  Driver = "supabase"
	DriverPostgres  Driver = "postgres"
	DriverSurrealDB Driver = "surrealdb"
)

// ParseDriver validates a driver name
func ParseDriver(name string) (Driver, error) {
	switch d := Driver(name); d {
	case DriverSupabase, DriverPostgres, DriverSurrealDB:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
}

// Pinger is implemented by every store client and backs the readiness probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// Database defines the SurrealQL query interface used by the surreal repositories
type Database interface {
	Pinger

	// Connection management
	Connect(ctx context.Context) error
	Close() error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}
