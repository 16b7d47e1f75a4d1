package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/dto"
	"github.com/dataincloud/resource-api/internal/mocks"
	"github.com/dataincloud/resource-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var birthDate = time.Date(1992, time.October, 12, 0, 0, 0, 0, time.UTC)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		svc := NewUserService(users, nil)

		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == 0 && u.Username == "jdoe" && u.BirthDate.Equal(birthDate)
		})).Return(&domain.User{ID: 1, Username: "jdoe", BirthDate: birthDate}, nil)

		out, err := svc.Create(ctx, dto.UserCreateDto{Username: "jdoe", BirthDate: birthDate})

		require.NoError(t, err)
		assert.Equal(t, dto.UserDto{ID: 1, Username: "jdoe", BirthDate: birthDate}, out)
		users.AssertExpectations(t)
	})

	t.Run("invalid payload never reaches the store", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		svc := NewUserService(users, nil)

		_, err := svc.Create(ctx, dto.UserCreateDto{Username: "", BirthDate: birthDate})

		assert.ErrorIs(t, err, domain.ErrValidation)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		svc := NewUserService(users, nil)
		boom := errors.New("connection reset")

		users.On("Create", mock.Anything, mock.Anything).Return(nil, boom)

		_, err := svc.Create(ctx, dto.UserCreateDto{Username: "jdoe", BirthDate: birthDate})

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to create user")
	})
}

func TestUserService_Read(t *testing.T) {
	ctx := context.Background()
	users := new(mocks.TestifyMockUserStore)
	svc := NewUserService(users, nil)

	users.On("ReadAll", mock.Anything).Return([]*domain.User{
		{ID: 1, Username: "a", BirthDate: birthDate},
		{ID: 2, Username: "b", BirthDate: birthDate},
	}, nil)
	users.On("ReadByID", mock.Anything, int64(9999)).Return(nil, store.ErrUserNotFound)

	all, err := svc.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)

	_, err = svc.ReadByID(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	in := dto.UserDto{ID: 3, Username: "renamed", BirthDate: birthDate}

	t.Run("updated", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		svc := NewUserService(users, nil)

		users.On("Update", mock.Anything, dto.UserToDomain(in)).
			Return(store.Updated(dto.UserToDomain(in)), nil)

		out, err := svc.Update(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("unknown identity is not found", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		svc := NewUserService(users, nil)

		users.On("Update", mock.Anything, mock.Anything).
			Return(store.NotFoundForUpdate[*domain.User](), nil)

		_, err := svc.Update(ctx, in)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("missing id is a validation error", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		svc := NewUserService(users, nil)

		_, err := svc.Update(ctx, dto.UserDto{Username: "x", BirthDate: birthDate})

		assert.ErrorIs(t, err, domain.ErrValidation)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteByID(t *testing.T) {
	ctx := context.Background()
	users := new(mocks.TestifyMockUserStore)
	svc := NewUserService(users, nil)

	users.On("Delete", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Username: "jdoe", BirthDate: birthDate}, nil)
	users.On("Delete", mock.Anything, int64(2)).Return(nil, store.ErrReferenced)

	out, err := svc.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", out.Username)

	_, err = svc.DeleteByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrReferenced)
}
