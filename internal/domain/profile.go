package domain

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ProfileTag classifies what a profile is used for.
// The set is closed; see AllProfileTags.
type ProfileTag string

// Possible profile tag values
const (
	ProfileTagEducation ProfileTag = "EDUCATION"
	ProfileTagBlog      ProfileTag = "BLOG"
	ProfileTagShop      ProfileTag = "SHOP"
)

// AllProfileTags returns every valid tag in declaration order.
func AllProfileTags() []ProfileTag {
	return []ProfileTag{ProfileTagEducation, ProfileTagBlog, ProfileTagShop}
}

// IsValid reports whether t is a member of the tag enumeration.
func (t ProfileTag) IsValid() bool {
	switch t {
	case ProfileTagEducation, ProfileTagBlog, ProfileTagShop:
		return true
	default:
		return false
	}
}

// Common validation errors for Profile
var (
	ErrBlankFirstName     = fmt.Errorf("%w: first name cannot be blank", ErrValidation)
	ErrBlankLastName      = fmt.Errorf("%w: last name cannot be blank", ErrValidation)
	ErrEmptyPhoto         = fmt.Errorf("%w: photo cannot be empty", ErrValidation)
	ErrEmptyTags          = fmt.Errorf("%w: tags cannot be empty", ErrValidation)
	ErrInvalidProfileTag  = fmt.Errorf("%w: invalid profile tag", ErrValidation)
	ErrMissingProfileUser = fmt.Errorf("%w: profile must reference a user", ErrValidation)
)

// Profile holds optional personal details of a User.
//
// Its identity IS the owning user's identity: there is at most one Profile
// per user and no separately generated key. Optional fields are nil when
// absent, which is distinct from present-but-empty (rejected by Validate).
type Profile struct {
	UserID    int64
	FirstName *string
	LastName  *string
	BirthDate *time.Time
	Photo     []byte
	Tags      []ProfileTag
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.UserID <= 0 {
		return NewValidationError("userId", "is required", ErrMissingProfileUser)
	}

	if p.FirstName != nil && strings.TrimSpace(*p.FirstName) == "" {
		return NewValidationError("firstName", "cannot be blank", ErrBlankFirstName)
	}

	if p.LastName != nil && strings.TrimSpace(*p.LastName) == "" {
		return NewValidationError("lastName", "cannot be blank", ErrBlankLastName)
	}

	if p.BirthDate != nil && !isPast(*p.BirthDate) {
		return NewValidationError("birthDate", "must be in the past", ErrBirthDateNotPast)
	}

	if p.Photo != nil && len(p.Photo) == 0 {
		return NewValidationError("photo", "cannot be empty", ErrEmptyPhoto)
	}

	if p.Tags != nil {
		if len(p.Tags) == 0 {
			return NewValidationError("tags", "cannot be empty", ErrEmptyTags)
		}
		for _, tag := range p.Tags {
			if !tag.IsValid() {
				return NewValidationError("tags", fmt.Sprintf("contains unknown tag %q", tag), ErrInvalidProfileTag)
			}
		}
	}

	return nil
}

// Equal reports whether both profiles hold the same field values.
func (p *Profile) Equal(o *Profile) bool {
	return p.UserID == o.UserID &&
		equalStringPtr(p.FirstName, o.FirstName) &&
		equalStringPtr(p.LastName, o.LastName) &&
		equalTimePtr(p.BirthDate, o.BirthDate) &&
		(p.Photo == nil) == (o.Photo == nil) && bytes.Equal(p.Photo, o.Photo) &&
		(p.Tags == nil) == (o.Tags == nil) && slices.Equal(p.Tags, o.Tags)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
