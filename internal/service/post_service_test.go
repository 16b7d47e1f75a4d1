package service

import (
	"context"
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

func newPostService(posts *mocks.TestifyMockPostStore, users *mocks.TestifyMockUserStore, now time.Time) *PostServiceImpl {
	svc := NewPostService(posts, users, nil).(*PostServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 1, 10, 0, 0, 123456789, time.FixedZone("CEST", 2*60*60))
	stamped := now.UTC().Truncate(time.Microsecond)

	t.Run("stamps creation time", func(t *testing.T) {
		posts := new(mocks.TestifyMockPostStore)
		svc := newPostService(posts, new(mocks.TestifyMockUserStore), now)

		posts.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
			return p.CreatedDate.Equal(stamped) && p.CreatedDate.Location() == time.UTC
		})).Return(&domain.Post{ID: 5, Header: "header", CreatedDate: stamped, UserID: 1}, nil)

		out, err := svc.Create(ctx, dto.PostCreateDto{Header: "header", UserID: 1})

		require.NoError(t, err)
		assert.Equal(t, int64(5), out.ID)
		assert.True(t, stamped.Equal(out.CreatedDate))
		posts.AssertExpectations(t)
	})

	t.Run("short header", func(t *testing.T) {
		posts := new(mocks.TestifyMockPostStore)
		svc := newPostService(posts, new(mocks.TestifyMockUserStore), now)

		_, err := svc.Create(ctx, dto.PostCreateDto{Header: "ab", UserID: 1})

		assert.ErrorIs(t, err, domain.ErrValidation)
		posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		posts := new(mocks.TestifyMockPostStore)
		svc := newPostService(posts, new(mocks.TestifyMockUserStore), now)

		posts.On("Create", mock.Anything, mock.Anything).Return(nil, store.ErrUserNotFound)

		_, err := svc.Create(ctx, dto.PostCreateDto{Header: "header", UserID: 77})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	in := dto.PostDto{ID: 5, Header: "edited", Description: "d", CreatedDate: created, UserID: 1}

	posts := new(mocks.TestifyMockPostStore)
	svc := newPostService(posts, new(mocks.TestifyMockUserStore), created)

	posts.On("Update", mock.Anything, dto.PostToDomain(in)).Return(store.Updated(dto.PostToDomain(in)), nil).Once()
	posts.On("Update", mock.Anything, mock.Anything).Return(store.NotFoundForUpdate[*domain.Post](), nil)
	posts.On("Delete", mock.Anything, int64(5)).Return(dto.PostToDomain(in), nil).Once()
	posts.On("Delete", mock.Anything, int64(5)).Return(nil, store.ErrPostNotFound)

	out, err := svc.Update(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = svc.Update(ctx, in)
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	deleted, err := svc.DeleteByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, in, deleted)

	_, err = svc.DeleteByID(ctx, 5)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_Author(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)

	posts := new(mocks.TestifyMockPostStore)
	users := new(mocks.TestifyMockUserStore)
	svc := newPostService(posts, users, created)

	posts.On("ReadByID", mock.Anything, int64(5)).
		Return(&domain.Post{ID: 5, Header: "header", CreatedDate: created, UserID: 3}, nil)
	posts.On("ReadByID", mock.Anything, int64(6)).Return(nil, store.ErrPostNotFound)
	users.On("ReadByID", mock.Anything, int64(3)).
		Return(&domain.User{ID: 3, Username: "author", BirthDate: birthDate}, nil)

	author, err := svc.Author(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, dto.UserDto{ID: 3, Username: "author", BirthDate: birthDate}, author)

	_, err = svc.Author(ctx, 6)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	users.AssertNumberOfCalls(t, "ReadByID", 1)
}
