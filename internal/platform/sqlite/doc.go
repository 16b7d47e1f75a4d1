// Package sqlite provides GORM-backed implementations of the user and post
// stores on an embedded SQLite database.
//
// The schema is created with AutoMigrate when the database is opened.
// Foreign keys must be enabled in the DSN (`_foreign_keys=on`); Open adds
// the parameter when it is missing.
package sqlite
