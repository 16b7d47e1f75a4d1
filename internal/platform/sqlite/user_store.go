package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore implements store.UserStore on SQLite through GORM.
type UserStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStore creates a UserStore. If logger is nil, a default logger will be used.
func NewUserStore(db *gorm.DB, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{db: db, logger: logger.With(slog.String("component", "user_store"))}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.ID != 0 {
		return nil, domain.NewValidationError("id", "must not be set on create", domain.ErrIdentityAssigned)
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	m := toUserModel(user)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("user created successfully", slog.Int64("user_id", m.ID))
	return m.toDomain(), nil
}

// ReadAll implements store.UserStore.ReadAll
func (s *UserStore) ReadAll(ctx context.Context) ([]*domain.User, error) {
	var models []userModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	users := make([]*domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, m.toDomain())
	}
	return users, nil
}

// ReadByID implements store.UserStore.ReadByID
func (s *UserStore) ReadByID(ctx context.Context, id int64) (*domain.User, error) {
	m, err := findUser(s.db.WithContext(ctx), id)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get user by ID",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
		}
		return nil, err
	}
	return m.toDomain(), nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) (store.UpdateResult[*domain.User], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.ID <= 0 {
		return store.UpdateResult[*domain.User]{}, domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}
	if err := user.Validate(); err != nil {
		return store.UpdateResult[*domain.User]{}, err
	}

	m := toUserModel(user)
	var found bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userModel{}).Where("id = ?", m.ID).Updates(map[string]any{
			"username":   m.Username,
			"birth_date": m.BirthDate,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		updated, err := findUser(tx, m.ID)
		if err != nil {
			return err
		}
		m = *updated
		return nil
	})
	if err != nil {
		log.Error("failed to update user", slog.String("error", err.Error()), slog.Int64("user_id", user.ID))
		return store.UpdateResult[*domain.User]{}, MapError(err)
	}
	if !found {
		return store.NotFoundForUpdate[*domain.User](), nil
	}

	log.Info("user updated successfully", slog.Int64("user_id", m.ID))
	return store.Updated(m.toDomain()), nil
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *userModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findUser(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&userModel{}, id).Error; err != nil {
			return err
		}
		deleted = m
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return nil, err
		case IsForeignKeyViolation(err):
			log.Warn("user still owns posts", slog.Int64("user_id", id))
			return nil, store.NewStoreError("user", "delete",
				fmt.Sprintf("user %d still owns posts", id), store.ErrReferenced)
		}
		log.Error("failed to delete user", slog.String("error", err.Error()), slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	log.Info("user deleted successfully", slog.Int64("user_id", id))
	return deleted.toDomain(), nil
}

// Ping implements store.UserStore.Ping
func (s *UserStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// findUser loads a user row, translating a missing row to store.ErrUserNotFound.
func findUser(db *gorm.DB, id int64) (*userModel, error) {
	var m userModel
	if err := db.Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return &m, nil
}
