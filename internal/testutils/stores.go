package testutils

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/boltdb/bolt"
	"github.com/dataincloud/resource-api/internal/platform/boltstore"
	"github.com/dataincloud/resource-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Stores bundles the backing stores of a fully wired application.
type Stores struct {
	Users    *sqlite.UserStore
	Posts    *sqlite.PostStore
	Profiles *boltstore.ProfileStore
}

// SetupSQLiteDB opens a migrated SQLite database in a temporary directory.
// The database is closed on test cleanup.
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "resources.db"), nil)
	require.NoError(t, err, "Failed to open SQLite database")
	t.Cleanup(func() {
		if err := sqlite.Close(db); err != nil {
			t.Logf("Warning: failed to close SQLite database: %v", err)
		}
	})
	return db
}

// SetupBoltDB opens a Bolt document database in a temporary directory.
// The database is closed on test cleanup.
func SetupBoltDB(t *testing.T) *bolt.DB {
	t.Helper()

	db, err := boltstore.Open(filepath.Join(t.TempDir(), "profiles.db"), time.Second)
	require.NoError(t, err, "Failed to open Bolt database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close Bolt database: %v", err)
		}
	})
	return db
}

// SetupStores opens SQLite relational stores and a Bolt profile store.
func SetupStores(t *testing.T, logger *slog.Logger) Stores {
	t.Helper()

	db := SetupSQLiteDB(t)
	return Stores{
		Users:    sqlite.NewUserStore(db, logger),
		Posts:    sqlite.NewPostStore(db, logger),
		Profiles: boltstore.NewProfileStore(SetupBoltDB(t), logger),
	}
}
