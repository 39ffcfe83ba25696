// Package postgres implements the service repositories directly on the
// project's Postgres database using sqlx.
//
// The schema is created by the embedded migrations in the database package.
package postgres
