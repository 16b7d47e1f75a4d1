package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var birthDate = time.Date(1988, time.March, 3, 0, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "birth_date"})
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "header", "description", "created_date", "user_id"})
}

func TestPostgresUserStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("returns user with generated id", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("jdoe", birthDate).
			WillReturnRows(userRows().AddRow(int64(1), "jdoe", birthDate))

		created, err := s.Create(ctx, &domain.User{Username: "jdoe", BirthDate: birthDate})

		require.NoError(t, err)
		assert.True(t, created.Equal(&domain.User{ID: 1, Username: "jdoe", BirthDate: birthDate}))
	})

	t.Run("rejects assigned identity", func(t *testing.T) {
		db, _ := newMock(t)
		s := NewPostgresUserStore(db, nil)

		_, err := s.Create(ctx, &domain.User{ID: 3, Username: "jdoe", BirthDate: birthDate})

		assert.ErrorIs(t, err, domain.ErrIdentityAssigned)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects invalid user", func(t *testing.T) {
		db, _ := newMock(t)
		s := NewPostgresUserStore(db, nil)

		_, err := s.Create(ctx, &domain.User{Username: " ", BirthDate: birthDate})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPostgresUserStore_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("read all ordered", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, birth_date FROM users ORDER BY id")).
			WillReturnRows(userRows().
				AddRow(int64(1), "first", birthDate).
				AddRow(int64(2), "second", birthDate))

		users, err := s.ReadAll(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "first", users[0].Username)
		assert.Equal(t, "second", users[1].Username)
	})

	t.Run("read all empty is not nil", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("FROM users ORDER BY id").WillReturnRows(userRows())

		users, err := s.ReadAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("read by id not found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("FROM users WHERE id").WithArgs(int64(9999)).WillReturnRows(userRows())

		_, err := s.ReadByID(ctx, 9999)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresUserStore_Update(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 4, Username: "renamed", BirthDate: birthDate}

	t.Run("updated", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("UPDATE users").
			WithArgs("renamed", birthDate, int64(4)).
			WillReturnRows(userRows().AddRow(int64(4), "renamed", birthDate))

		res, err := s.Update(ctx, user)

		require.NoError(t, err)
		updated, ok := res.Value()
		require.True(t, ok)
		assert.True(t, user.Equal(updated))
	})

	t.Run("missing user is not an error", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("UPDATE users").WillReturnRows(userRows())

		res, err := s.Update(ctx, user)

		require.NoError(t, err)
		assert.False(t, res.Found())
	})
}

func TestPostgresUserStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns deleted state", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("DELETE FROM users").
			WithArgs(int64(1)).
			WillReturnRows(userRows().AddRow(int64(1), "jdoe", birthDate))

		deleted, err := s.Delete(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted.ID)
	})

	t.Run("user with posts", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("DELETE FROM users").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

		_, err := s.Delete(ctx, 1)

		assert.ErrorIs(t, err, store.ErrReferenced)
		var storeErr *store.StoreError
		assert.True(t, errors.As(err, &storeErr))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("DELETE FROM users").WillReturnRows(userRows())

		_, err := s.Delete(ctx, 1)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresPostStore_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	post := &domain.Post{Header: "header", Description: "body", CreatedDate: created, UserID: 7}

	t.Run("checks user and inserts in one transaction", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR SHARE")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery("INSERT INTO posts").
			WithArgs("header", "body", created, int64(7)).
			WillReturnRows(postRows().AddRow(int64(5), "header", "body", created, int64(7)))
		mock.ExpectCommit()

		got, err := s.Create(ctx, post)

		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		assert.True(t, post.EqualIgnoringID(got))
	})

	t.Run("unknown user rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR SHARE").WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := s.Create(ctx, post)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("foreign key race maps to unknown user", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR SHARE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery("INSERT INTO posts").WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})
		mock.ExpectRollback()

		_, err := s.Create(ctx, post)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresPostStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	post := &domain.Post{ID: 5, Header: "changed", Description: "body", CreatedDate: created, UserID: 7}

	t.Run("update missing post", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR SHARE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery("UPDATE posts").WillReturnRows(postRows())
		mock.ExpectCommit()

		res, err := s.Update(ctx, post)

		require.NoError(t, err)
		assert.False(t, res.Found())
	})

	t.Run("update existing post", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR SHARE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery("UPDATE posts").
			WithArgs("changed", "body", created, int64(7), int64(5)).
			WillReturnRows(postRows().AddRow(int64(5), "changed", "body", created, int64(7)))
		mock.ExpectCommit()

		res, err := s.Update(ctx, post)

		require.NoError(t, err)
		updated, ok := res.Value()
		require.True(t, ok)
		assert.True(t, post.Equal(updated))
	})

	t.Run("delete twice", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)

		mock.ExpectQuery("DELETE FROM posts").
			WithArgs(int64(5)).
			WillReturnRows(postRows().AddRow(int64(5), "changed", "body", created, int64(7)))
		mock.ExpectQuery("DELETE FROM posts").WithArgs(int64(5)).WillReturnRows(postRows())

		deleted, err := s.Delete(ctx, 5)
		require.NoError(t, err)
		assert.True(t, post.Equal(deleted))

		_, err = s.Delete(ctx, 5)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}
