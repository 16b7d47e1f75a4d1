package sqlite

import (
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
)

// userModel is the GORM shape of a user row.
type userModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"size:32;not null"`
	BirthDate time.Time `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:        u.ID,
		Username:  u.Username,
		BirthDate: u.BirthDate.UTC(),
	}
}

func (m userModel) toDomain() *domain.User {
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		BirthDate: m.BirthDate.UTC(),
	}
}

// postModel is the GORM shape of a post row.
type postModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Header      string    `gorm:"size:64;not null"`
	Description string    `gorm:"not null;default:''"`
	CreatedDate time.Time `gorm:"not null"`
	UserID      int64     `gorm:"not null;index"`

	// User is only declared for the foreign key constraint; it is never loaded.
	User *userModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (postModel) TableName() string { return "posts" }

func toPostModel(p *domain.Post) postModel {
	return postModel{
		ID:          p.ID,
		Header:      p.Header,
		Description: p.Description,
		CreatedDate: p.CreatedDate.UTC(),
		UserID:      p.UserID,
	}
}

func (m postModel) toDomain() *domain.Post {
	return &domain.Post{
		ID:          m.ID,
		Header:      m.Header,
		Description: m.Description,
		CreatedDate: m.CreatedDate.UTC(),
		UserID:      m.UserID,
	}
}
