package service

import (
	"context"
	"log/slog"

	"github.com/dataincloud/resource-api/internal/dto"
	"github.com/dataincloud/resource-api/internal/store"
)

// UserService provides CRUD operations on users.
type UserService interface {
	Create(ctx context.Context, in dto.UserCreateDto) (dto.UserDto, error)
	ReadAll(ctx context.Context) ([]dto.UserDto, error)
	ReadByID(ctx context.Context, id int64) (dto.UserDto, error)
	Update(ctx context.Context, in dto.UserDto) (dto.UserDto, error)
	DeleteByID(ctx context.Context, id int64) (dto.UserDto, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_service"),
	}
}

// Create validates and stores a new user.
func (s *UserServiceImpl) Create(ctx context.Context, in dto.UserCreateDto) (dto.UserDto, error) {
	if err := dto.Validate(in); err != nil {
		return dto.UserDto{}, err
	}

	created, err := s.userStore.Create(ctx, dto.UserCreateToDomain(in))
	if err != nil {
		return dto.UserDto{}, wrapError("create user", err)
	}

	s.logger.Debug("user created", "user_id", created.ID)
	return dto.FromUser(created), nil
}

// ReadAll returns every user in store order.
func (s *UserServiceImpl) ReadAll(ctx context.Context) ([]dto.UserDto, error) {
	users, err := s.userStore.ReadAll(ctx)
	if err != nil {
		return nil, wrapError("read users", err)
	}
	return dto.FromUsers(users), nil
}

// ReadByID returns a single user or an error wrapping store.ErrUserNotFound.
func (s *UserServiceImpl) ReadByID(ctx context.Context, id int64) (dto.UserDto, error) {
	user, err := s.userStore.ReadByID(ctx, id)
	if err != nil {
		return dto.UserDto{}, wrapError("read user", err)
	}
	return dto.FromUser(user), nil
}

// Update replaces every field of an existing user.
// An unknown identity yields an error wrapping store.ErrUserNotFound.
func (s *UserServiceImpl) Update(ctx context.Context, in dto.UserDto) (dto.UserDto, error) {
	if err := dto.Validate(in); err != nil {
		return dto.UserDto{}, err
	}

	res, err := s.userStore.Update(ctx, dto.UserToDomain(in))
	if err != nil {
		return dto.UserDto{}, wrapError("update user", err)
	}

	updated, ok := res.Value()
	if !ok {
		return dto.UserDto{}, wrapError("update user", store.ErrUserNotFound)
	}

	s.logger.Debug("user updated", "user_id", updated.ID)
	return dto.FromUser(updated), nil
}

// DeleteByID removes a user and returns its final state.
func (s *UserServiceImpl) DeleteByID(ctx context.Context, id int64) (dto.UserDto, error) {
	deleted, err := s.userStore.Delete(ctx, id)
	if err != nil {
		return dto.UserDto{}, wrapError("delete user", err)
	}

	s.logger.Debug("user deleted", "user_id", id)
	return dto.FromUser(deleted), nil
}
