package sqlite

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostStore implements store.PostStore on SQLite through GORM.
type PostStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostStore creates a PostStore. If logger is nil, a default logger will be used.
func NewPostStore(db *gorm.DB, logger *slog.Logger) *PostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostStore{db: db, logger: logger.With(slog.String("component", "post_store"))}
}

var _ store.PostStore = (*PostStore)(nil)

// Create implements store.PostStore.Create
func (s *PostStore) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if post.ID != 0 {
		return nil, domain.NewValidationError("id", "must not be set on create", domain.ErrIdentityAssigned)
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	m := toPostModel(post)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findUser(tx, m.UserID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&m).Error
	})
	if err != nil {
		log.Warn("failed to create post", slog.String("error", err.Error()), slog.Int64("user_id", post.UserID))
		return nil, mapWriteError(err)
	}

	log.Info("post created successfully", slog.Int64("post_id", m.ID), slog.Int64("user_id", m.UserID))
	return m.toDomain(), nil
}

// ReadAll implements store.PostStore.ReadAll
func (s *PostStore) ReadAll(ctx context.Context) ([]*domain.Post, error) {
	var models []postModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	posts := make([]*domain.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, m.toDomain())
	}
	return posts, nil
}

// ReadByID implements store.PostStore.ReadByID
func (s *PostStore) ReadByID(ctx context.Context, id int64) (*domain.Post, error) {
	m, err := findPost(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

// Update implements store.PostStore.Update
func (s *PostStore) Update(ctx context.Context, post *domain.Post) (store.UpdateResult[*domain.Post], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if post.ID <= 0 {
		return store.UpdateResult[*domain.Post]{}, domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}
	if err := post.Validate(); err != nil {
		return store.UpdateResult[*domain.Post]{}, err
	}

	m := toPostModel(post)
	var found bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findUser(tx, m.UserID); err != nil {
			return err
		}
		res := tx.Model(&postModel{}).Where("id = ?", m.ID).Updates(map[string]any{
			"header":       m.Header,
			"description":  m.Description,
			"created_date": m.CreatedDate,
			"user_id":      m.UserID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		updated, err := findPost(tx, m.ID)
		if err != nil {
			return err
		}
		m = *updated
		return nil
	})
	if err != nil {
		log.Warn("failed to update post", slog.String("error", err.Error()), slog.Int64("post_id", post.ID))
		return store.UpdateResult[*domain.Post]{}, mapWriteError(err)
	}
	if !found {
		return store.NotFoundForUpdate[*domain.Post](), nil
	}

	log.Info("post updated successfully", slog.Int64("post_id", m.ID))
	return store.Updated(m.toDomain()), nil
}

// Delete implements store.PostStore.Delete
func (s *PostStore) Delete(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *postModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findPost(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&postModel{}, id).Error; err != nil {
			return err
		}
		deleted = m
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrPostNotFound) {
			log.Error("failed to delete post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		}
		return nil, MapError(err)
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return deleted.toDomain(), nil
}

func findPost(db *gorm.DB, id int64) (*postModel, error) {
	var m postModel
	if err := db.Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, MapError(err)
	}
	return &m, nil
}

// mapWriteError translates a failed post write; a foreign key failure means
// the referenced user disappeared.
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
