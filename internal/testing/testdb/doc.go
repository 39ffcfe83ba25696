// Package testdb provides a scripted stand-in for database.Database.
//
// The fake records every statement with its variables and answers from a
// queue of canned results, so SurrealQL repositories can be tested without a
// running SurrealDB instance.
//
// Usage:
//
//	db := testdb.NewFake()
//	db.Respond(testdb.Rows(map[string]interface{}{"id": "adventures:a1"}))
//	repo := surreal.NewAdventureRepository(db)
//	...
//	call := db.LastCall()
package testdb
