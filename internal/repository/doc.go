// Package repository builds the data access layer for the Motion API.
//
// Each driver lives in its own subpackage and implements the repository
// interfaces declared by the service package:
//
//   - supabase: PostgREST calls through database.SupabaseClient
//   - postgres: SQL through sqlx
//   - surreal: SurrealQL through database.Database
//
// Open selects the driver from configuration:
//
//	stores, err := repository.Open(ctx, repository.Config{Driver: database.DriverSupabase, ...})
//	if err != nil {
//	    return err
//	}
//	defer stores.Close()
//
// Lookups that find nothing return a nil row and a nil error; the service
// layer turns that into its not-found error.
package repository
