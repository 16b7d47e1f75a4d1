package store

import (
	"context"

	"github.com/dataincloud/resource-api/internal/domain"
)

// ProfileStore defines the interface for profile document persistence.
// Profiles are keyed by the owning user's ID.
type ProfileStore interface {
	// Create stores a new profile.
	// Returns ErrProfileExists if the user already has one.
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// ReadAll returns every stored profile ordered by user ID.
	ReadAll(ctx context.Context) ([]*domain.Profile, error)

	// ReadByID returns ErrProfileNotFound if the user has no profile.
	ReadByID(ctx context.Context, userID int64) (*domain.Profile, error)

	// Update replaces the whole stored document; absent optional fields are
	// cleared rather than merged.
	Update(ctx context.Context, profile *domain.Profile) (UpdateResult[*domain.Profile], error)

	// Delete returns ErrProfileNotFound if the user has no profile.
	Delete(ctx context.Context, userID int64) (*domain.Profile, error)

	// Ping checks that the underlying storage is reachable.
	Ping(ctx context.Context) error
}
