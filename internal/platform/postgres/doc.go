// Package postgres provides PostgreSQL implementations of the user and post
// stores defined in internal/store, together with the embedded goose
// migrations that create their schema.
//
// Connections are opened through the pgx database/sql driver; driver errors
// are translated with MapError.
package postgres
