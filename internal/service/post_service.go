package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dataincloud/resource-api/internal/dto"
	"github.com/dataincloud/resource-api/internal/store"
)

// PostService provides CRUD operations on posts and access to their authors.
type PostService interface {
	Create(ctx context.Context, in dto.PostCreateDto) (dto.PostDto, error)
	ReadAll(ctx context.Context) ([]dto.PostDto, error)
	ReadByID(ctx context.Context, id int64) (dto.PostDto, error)
	Update(ctx context.Context, in dto.PostDto) (dto.PostDto, error)
	DeleteByID(ctx context.Context, id int64) (dto.PostDto, error)

	// Author loads the user who wrote the post.
	Author(ctx context.Context, postID int64) (dto.UserDto, error)
}

// PostServiceImpl implements the PostService interface
type PostServiceImpl struct {
	postStore store.PostStore
	userStore store.UserStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(postStore store.PostStore, userStore store.UserStore, logger *slog.Logger) PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostServiceImpl{
		postStore: postStore,
		userStore: userStore,
		logger:    logger.With("component", "post_service"),
		now:       time.Now,
	}
}

// Create validates the payload, stamps the creation time and stores the post.
// A missing author yields an error wrapping store.ErrUserNotFound.
func (s *PostServiceImpl) Create(ctx context.Context, in dto.PostCreateDto) (dto.PostDto, error) {
	if err := dto.Validate(in); err != nil {
		return dto.PostDto{}, err
	}

	// Microsecond precision is the finest every backend round-trips.
	createdDate := s.now().UTC().Truncate(time.Microsecond)

	created, err := s.postStore.Create(ctx, dto.PostCreateToDomain(in, createdDate))
	if err != nil {
		return dto.PostDto{}, wrapError("create post", err)
	}

	s.logger.Debug("post created", "post_id", created.ID, "user_id", created.UserID)
	return dto.FromPost(created), nil
}

// ReadAll returns every post in store order.
func (s *PostServiceImpl) ReadAll(ctx context.Context) ([]dto.PostDto, error) {
	posts, err := s.postStore.ReadAll(ctx)
	if err != nil {
		return nil, wrapError("read posts", err)
	}
	return dto.FromPosts(posts), nil
}

// ReadByID returns a single post or an error wrapping store.ErrPostNotFound.
func (s *PostServiceImpl) ReadByID(ctx context.Context, id int64) (dto.PostDto, error) {
	post, err := s.postStore.ReadByID(ctx, id)
	if err != nil {
		return dto.PostDto{}, wrapError("read post", err)
	}
	return dto.FromPost(post), nil
}

// Update replaces every field of an existing post.
func (s *PostServiceImpl) Update(ctx context.Context, in dto.PostDto) (dto.PostDto, error) {
	if err := dto.Validate(in); err != nil {
		return dto.PostDto{}, err
	}

	res, err := s.postStore.Update(ctx, dto.PostToDomain(in))
	if err != nil {
		return dto.PostDto{}, wrapError("update post", err)
	}

	updated, ok := res.Value()
	if !ok {
		return dto.PostDto{}, wrapError("update post", store.ErrPostNotFound)
	}
	return dto.FromPost(updated), nil
}

// DeleteByID removes a post and returns its final state.
func (s *PostServiceImpl) DeleteByID(ctx context.Context, id int64) (dto.PostDto, error) {
	deleted, err := s.postStore.Delete(ctx, id)
	if err != nil {
		return dto.PostDto{}, wrapError("delete post", err)
	}

	s.logger.Debug("post deleted", "post_id", id)
	return dto.FromPost(deleted), nil
}

// Author implements PostService.Author
func (s *PostServiceImpl) Author(ctx context.Context, postID int64) (dto.UserDto, error) {
	post, err := s.postStore.ReadByID(ctx, postID)
	if err != nil {
		return dto.UserDto{}, wrapError("read post", err)
	}

	user, err := s.userStore.ReadByID(ctx, post.UserID)
	if err != nil {
		return dto.UserDto{}, wrapError("read post author", err)
	}
	return dto.FromUser(user), nil
}
