package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Header length bounds, inclusive.
const (
	HeaderMinLength = 4
	HeaderMaxLength = 64
)

// Common validation errors for Post
var (
	ErrBlankHeader        = fmt.Errorf("%w: header cannot be blank", ErrValidation)
	ErrHeaderLength       = fmt.Errorf("%w: header must be between %d and %d characters", ErrValidation, HeaderMinLength, HeaderMaxLength)
	ErrMissingCreatedDate = fmt.Errorf("%w: created date is required", ErrValidation)
	ErrMissingPostUser    = fmt.Errorf("%w: post must reference a user", ErrValidation)
)

// Post is a piece of content written by a User.
//
// A Post references its owner by identity only. The owning User is never
// embedded; services load it on demand through the user store.
type Post struct {
	ID          int64
	Header      string
	Description string
	CreatedDate time.Time
	UserID      int64
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Header) == "" {
		return NewValidationError("header", "cannot be blank", ErrBlankHeader)
	}

	if n := utf8.RuneCountInString(p.Header); n < HeaderMinLength || n > HeaderMaxLength {
		return NewValidationError("header", "has invalid length", ErrHeaderLength)
	}

	if p.CreatedDate.IsZero() {
		return NewValidationError("createdDate", "is required", ErrMissingCreatedDate)
	}

	if p.UserID <= 0 {
		return NewValidationError("userId", "is required", ErrMissingPostUser)
	}

	return nil
}

// Equal reports whether both posts hold the same identity and field values.
func (p *Post) Equal(o *Post) bool {
	return p.ID == o.ID && p.EqualIgnoringID(o)
}

// EqualIgnoringID compares every field except the store-assigned identity.
func (p *Post) EqualIgnoringID(o *Post) bool {
	return p.Header == o.Header &&
		p.Description == o.Description &&
		p.CreatedDate.Equal(o.CreatedDate) &&
		p.UserID == o.UserID
}
