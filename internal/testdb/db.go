package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dataincloud/resource-api/internal/ciutil"
	"github.com/dataincloud/resource-api/internal/platform/postgres"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and DATAINCLOUD_TEST_DB_URL in that order.
func GetTestDatabaseURL() string {
	return ciutil.GetEnvWithFallbacks(
		[]string{ciutil.EnvDatabaseURL, ciutil.EnvTestDBURL}, "", nil)
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDBWithT opens the test database, applies the embedded migrations
// and empties every table. The test is skipped when no database URL is set,
// except in CI where a missing database is a failure.
// The connection is closed when the test finishes.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatal("DATABASE_URL or DATAINCLOUD_TEST_DB_URL must be set in CI")
		}
		t.Skip("DATABASE_URL or DATAINCLOUD_TEST_DB_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateUp, nil), "Failed to run migrations")
	ResetTables(t, db)

	return db
}

// ResetTables removes all rows and restarts identity sequences.
func ResetTables(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err := db.ExecContext(ctx, `TRUNCATE TABLE posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Failed to reset tables")
}
