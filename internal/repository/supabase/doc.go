// Package supabase implements the service repositories on the Supabase REST
// (PostgREST) API.
//
// Rows are exchanged as JSON using the model types' snake_case tags, so the
// table columns and the model fields share names. Writes ask PostgREST to
// return the stored representation, which the repositories copy back into the
// caller's value.
package supabase
