package store

import (
	"context"

	"github.com/dataincloud/resource-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and returns it with its generated ID.
	// The given user must not carry an ID yet; domain.ErrIdentityAssigned
	// is returned otherwise.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// ReadAll returns every stored user ordered by ID.
	// The result is an empty slice, never nil, when the store is empty.
	ReadAll(ctx context.Context) ([]*domain.User, error)

	// ReadByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	ReadByID(ctx context.Context, id int64) (*domain.User, error)

	// Update overwrites the stored user matching user.ID.
	// A missing user yields a NotFound result and a nil error.
	Update(ctx context.Context, user *domain.User) (UpdateResult[*domain.User], error)

	// Delete removes a user and returns its state prior to removal.
	// Returns ErrUserNotFound if the user does not exist and ErrReferenced
	// if the user still owns posts.
	Delete(ctx context.Context, id int64) (*domain.User, error)

	// Ping checks that the underlying storage is reachable.
	Ping(ctx context.Context) error
}
