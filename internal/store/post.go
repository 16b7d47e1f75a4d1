package store

import (
	"context"

	"github.com/dataincloud/resource-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
//
// Create and Update verify that the referenced user exists within the same
// transaction as the write and return ErrUserNotFound when it does not.
type PostStore interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	ReadAll(ctx context.Context) ([]*domain.Post, error)
	// ReadByID returns ErrPostNotFound if the post does not exist.
	ReadByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (UpdateResult[*domain.Post], error)
	// Delete returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) (*domain.Post, error)
}
