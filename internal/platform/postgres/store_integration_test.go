//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/platform/postgres"
	"github.com/dataincloud/resource-api/internal/store"
	"github.com/dataincloud/resource-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoresAgainstPostgres(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()
	users := postgres.NewPostgresUserStore(db, nil)
	posts := postgres.NewPostgresPostStore(db, nil)

	birth := time.Date(1991, time.August, 9, 10, 0, 0, 0, time.UTC)
	user, err := users.Create(ctx, &domain.User{Username: "integration", BirthDate: birth})
	require.NoError(t, err)
	assert.Positive(t, user.ID)

	got, err := users.ReadByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, user.Equal(got))

	created := time.Now().UTC().Truncate(time.Microsecond)
	post, err := posts.Create(ctx, &domain.Post{Header: "first post", CreatedDate: created, UserID: user.ID})
	require.NoError(t, err)
	assert.True(t, created.Equal(post.CreatedDate))

	_, err = posts.Create(ctx, &domain.Post{Header: "orphan", CreatedDate: created, UserID: user.ID + 100})
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = users.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrReferenced)

	deletedPost, err := posts.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, post.Equal(deletedPost))

	_, err = posts.Delete(ctx, post.ID)
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	res, err := users.Update(ctx, &domain.User{ID: user.ID + 100, Username: "ghost", BirthDate: birth})
	require.NoError(t, err)
	assert.False(t, res.Found())

	deletedUser, err := users.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, user.Equal(deletedUser))

	all, err := users.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
