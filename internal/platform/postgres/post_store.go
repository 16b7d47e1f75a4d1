package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db *sql.DB, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

const postColumns = `id, header, description, created_date, user_id`

// postRow is the database shape of a post.
type postRow struct {
	ID          int64
	Header      string
	Description string
	CreatedDate time.Time
	UserID      int64
}

func (r postRow) toDomain() *domain.Post {
	return &domain.Post{
		ID:          r.ID,
		Header:      r.Header,
		Description: r.Description,
		CreatedDate: r.CreatedDate.UTC(),
		UserID:      r.UserID,
	}
}

func scanPost(row interface{ Scan(dest ...any) error }) (*domain.Post, error) {
	var r postRow
	if err := row.Scan(&r.ID, &r.Header, &r.Description, &r.CreatedDate, &r.UserID); err != nil {
		return nil, err
	}
	return r.toDomain(), nil
}

// lockUser verifies the user exists and holds a share lock on its row until
// the surrounding transaction ends, so it cannot be deleted concurrently.
func lockUser(ctx context.Context, tx store.DBTX, userID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR SHARE`, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrUserNotFound
	}
	return err
}

// mapWriteError translates a failed post write.
func mapWriteError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return err
	case IsForeignKeyViolation(err):
		return store.ErrUserNotFound
	default:
		return MapError(err)
	}
}

// Create implements store.PostStore.Create
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if post.ID != 0 {
		return nil, domain.NewValidationError("id", "must not be set on create", domain.ErrIdentityAssigned)
	}
	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	var created *domain.Post
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := lockUser(ctx, tx, post.UserID); err != nil {
			return err
		}

		query := `
			INSERT INTO posts (header, description, created_date, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + postColumns
		var err error
		created, err = scanPost(tx.QueryRowContext(ctx, query,
			post.Header, post.Description, post.CreatedDate.UTC(), post.UserID))
		return err
	})
	if err != nil {
		log.Warn("failed to create post",
			slog.String("error", err.Error()),
			slog.Int64("user_id", post.UserID))
		return nil, mapWriteError(err)
	}

	log.Info("post created successfully",
		slog.Int64("post_id", created.ID),
		slog.Int64("user_id", created.UserID))
	return created, nil
}

// ReadAll implements store.PostStore.ReadAll
func (s *PostgresPostStore) ReadAll(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		log.Error("failed to query posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating post rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("posts retrieved", slog.Int("count", len(posts)))
	return posts, nil
}

// ReadByID implements store.PostStore.ReadByID
func (s *PostgresPostStore) ReadByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := scanPost(s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, MapError(err)
	}

	return post, nil
}

// Update implements store.PostStore.Update
func (s *PostgresPostStore) Update(
	ctx context.Context,
	post *domain.Post,
) (store.UpdateResult[*domain.Post], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if post.ID <= 0 {
		return store.UpdateResult[*domain.Post]{}, domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}
	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return store.UpdateResult[*domain.Post]{}, err
	}

	var updated *domain.Post
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := lockUser(ctx, tx, post.UserID); err != nil {
			return err
		}

		query := `
			UPDATE posts
			SET header = $1, description = $2, created_date = $3, user_id = $4
			WHERE id = $5
			RETURNING ` + postColumns
		var err error
		updated, err = scanPost(tx.QueryRowContext(ctx, query,
			post.Header, post.Description, post.CreatedDate.UTC(), post.UserID, post.ID))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	})
	if err != nil {
		log.Warn("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return store.UpdateResult[*domain.Post]{}, mapWriteError(err)
	}

	if updated == nil {
		log.Debug("post not found for update", slog.Int64("post_id", post.ID))
		return store.NotFoundForUpdate[*domain.Post](), nil
	}

	log.Info("post updated successfully", slog.Int64("post_id", updated.ID))
	return store.Updated(updated), nil
}

// Delete implements store.PostStore.Delete
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleted, err := scanPost(s.db.QueryRowContext(ctx,
		`DELETE FROM posts WHERE id = $1 RETURNING `+postColumns, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found for delete", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, MapError(err)
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return deleted, nil
}
