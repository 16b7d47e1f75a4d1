// Package testdb provides utilities for PostgreSQL integration tests.
//
// Tests using it are built with the integration tag and skip themselves
// when no database URL is configured outside CI.
package testdb
