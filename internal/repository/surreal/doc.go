// Package surreal implements the service repositories on SurrealDB.
//
// Records are addressed as table:key where key is the service-assigned ID,
// so the IDs returned to callers are identical across storage drivers.
package surreal
