package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db *sql.DB, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// userRow is the database shape of a user.
type userRow struct {
	ID        int64
	Username  string
	BirthDate time.Time
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Username:  r.Username,
		BirthDate: r.BirthDate.UTC(),
	}
}

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var r userRow
	if err := row.Scan(&r.ID, &r.Username, &r.BirthDate); err != nil {
		return nil, err
	}
	return r.toDomain(), nil
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.ID != 0 {
		return nil, domain.NewValidationError("id", "must not be set on create", domain.ErrIdentityAssigned)
	}
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO users (username, birth_date)
		VALUES ($1, $2)
		RETURNING id, username, birth_date
	`
	created, err := scanUser(s.db.QueryRowContext(ctx, query, user.Username, user.BirthDate.UTC()))
	if err != nil {
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("user created successfully", slog.Int64("user_id", created.ID))
	return created, nil
}

// ReadAll implements store.UserStore.ReadAll
func (s *PostgresUserStore) ReadAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, username, birth_date FROM users ORDER BY id`)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("users retrieved", slog.Int("count", len(users)))
	return users, nil
}

// ReadByID implements store.UserStore.ReadByID
func (s *PostgresUserStore) ReadByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.Int64("user_id", id))

	query := `SELECT id, username, birth_date FROM users WHERE id = $1`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	return user, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(
	ctx context.Context,
	user *domain.User,
) (store.UpdateResult[*domain.User], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.ID <= 0 {
		return store.UpdateResult[*domain.User]{}, domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return store.UpdateResult[*domain.User]{}, err
	}

	query := `
		UPDATE users
		SET username = $1, birth_date = $2
		WHERE id = $3
		RETURNING id, username, birth_date
	`
	updated, err := scanUser(s.db.QueryRowContext(ctx, query, user.Username, user.BirthDate.UTC(), user.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found for update", slog.Int64("user_id", user.ID))
			return store.NotFoundForUpdate[*domain.User](), nil
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return store.UpdateResult[*domain.User]{}, MapError(err)
	}

	log.Info("user updated successfully", slog.Int64("user_id", updated.ID))
	return store.Updated(updated), nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE id = $1 RETURNING id, username, birth_date`
	deleted, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			log.Debug("user not found for delete", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		case IsForeignKeyViolation(err):
			log.Warn("user still owns posts", slog.Int64("user_id", id))
			return nil, store.NewStoreError("user", "delete",
				fmt.Sprintf("user %d still owns posts", id), store.ErrReferenced)
		}
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	log.Info("user deleted successfully", slog.Int64("user_id", id))
	return deleted, nil
}

// Ping implements store.UserStore.Ping
func (s *PostgresUserStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
