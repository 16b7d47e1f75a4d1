package dto

import (
	"time"

	"github.com/dataincloud/resource-api/internal/domain"
)

// ProfileDto is the wire representation of a profile, used for both create
// and update. Its identity is the owning user's ID.
//
// Absent optional fields decode to nil. Present-but-empty photo or tags
// fail validation.
type ProfileDto struct {
	UserID    int64               `json:"userId"              validate:"required,gt=0"`
	FirstName *string             `json:"firstName,omitempty" validate:"omitempty,notblank"`
	LastName  *string             `json:"lastName,omitempty"  validate:"omitempty,notblank"`
	BirthDate *time.Time          `json:"birthDate,omitempty" validate:"omitempty,lt"`
	Photo     []byte              `json:"photo,omitempty"     validate:"omitempty,min=1"`
	Tags      []domain.ProfileTag `json:"tags,omitempty"      validate:"omitempty,min=1,dive,oneof=EDUCATION BLOG SHOP"`
}
