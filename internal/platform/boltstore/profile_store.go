package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/boltdb/bolt"
	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/store"
)

var profilesBucket = []byte("profiles")

// Open opens or creates the Bolt file at path and ensures the profiles
// bucket exists. timeout bounds the wait for the file lock.
func Open(path string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open document store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(profilesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create profiles bucket: %w", err)
	}

	return db, nil
}

// ProfileStore implements store.ProfileStore on Bolt.
type ProfileStore struct {
	db     *bolt.DB
	logger *slog.Logger
}

// NewProfileStore creates a ProfileStore over an opened database.
// If logger is nil, a default logger will be used.
func NewProfileStore(db *bolt.DB, logger *slog.Logger) *ProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileStore{db: db, logger: logger.With(slog.String("component", "profile_store"))}
}

var _ store.ProfileStore = (*ProfileStore)(nil)

func encode(p *domain.Profile) ([]byte, error) {
	value, err := json.Marshal(toDocument(p))
	if err != nil {
		return nil, store.NewStoreError("profile", "encode", "failed to marshal document", err)
	}
	return value, nil
}

func decode(value []byte) (*domain.Profile, error) {
	var doc profileDocument
	if err := json.Unmarshal(value, &doc); err != nil {
		return nil, store.NewStoreError("profile", "decode", "failed to unmarshal document", err)
	}
	return doc.toDomain(), nil
}

// Create implements store.ProfileStore.Create
func (s *ProfileStore) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	value, err := encode(profile)
	if err != nil {
		return nil, err
	}

	var created *domain.Profile
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(profilesBucket)
		k := key(profile.UserID)
		if bucket.Get(k) != nil {
			return store.ErrProfileExists
		}
		if err := bucket.Put(k, value); err != nil {
			return err
		}
		created, err = decode(value)
		return err
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to create profile",
			slog.String("error", err.Error()),
			slog.Int64("user_id", profile.UserID))
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("profile created successfully",
		slog.Int64("user_id", profile.UserID))
	return created, nil
}

// ReadAll implements store.ProfileStore.ReadAll
func (s *ProfileStore) ReadAll(ctx context.Context) ([]*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profiles := make([]*domain.Profile, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(profilesBucket).ForEach(func(_, value []byte) error {
			p, err := decode(value)
			if err != nil {
				return err
			}
			profiles = append(profiles, p)
			return nil
		})
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to read profiles", slog.String("error", err.Error()))
		return nil, err
	}

	return profiles, nil
}

// ReadByID implements store.ProfileStore.ReadByID
func (s *ProfileStore) ReadByID(ctx context.Context, userID int64) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var profile *domain.Profile
	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(profilesBucket).Get(key(userID))
		if value == nil {
			return store.ErrProfileNotFound
		}
		var err error
		profile, err = decode(value)
		return err
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// Update implements store.ProfileStore.Update
func (s *ProfileStore) Update(
	ctx context.Context,
	profile *domain.Profile,
) (store.UpdateResult[*domain.Profile], error) {
	if err := ctx.Err(); err != nil {
		return store.UpdateResult[*domain.Profile]{}, err
	}
	if err := profile.Validate(); err != nil {
		return store.UpdateResult[*domain.Profile]{}, err
	}

	value, err := encode(profile)
	if err != nil {
		return store.UpdateResult[*domain.Profile]{}, err
	}

	var updated *domain.Profile
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(profilesBucket)
		k := key(profile.UserID)
		if bucket.Get(k) == nil {
			return nil
		}
		if err := bucket.Put(k, value); err != nil {
			return err
		}
		updated, err = decode(value)
		return err
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.Int64("user_id", profile.UserID))
		return store.UpdateResult[*domain.Profile]{}, err
	}
	if updated == nil {
		return store.NotFoundForUpdate[*domain.Profile](), nil
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("profile updated successfully",
		slog.Int64("user_id", profile.UserID))
	return store.Updated(updated), nil
}

// Delete implements store.ProfileStore.Delete
func (s *ProfileStore) Delete(ctx context.Context, userID int64) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var deleted *domain.Profile
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(profilesBucket)
		k := key(userID)
		value := bucket.Get(k)
		if value == nil {
			return store.ErrProfileNotFound
		}
		var err error
		// value is only valid during the transaction; decode before deleting.
		if deleted, err = decode(value); err != nil {
			return err
		}
		return bucket.Delete(k)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("profile deleted successfully",
		slog.Int64("user_id", userID))
	return deleted, nil
}

// Ping implements store.ProfileStore.Ping
func (s *ProfileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(profilesBucket) == nil {
			return store.NewStoreError("profile", "ping", "profiles bucket is missing", nil)
		}
		return nil
	})
}
