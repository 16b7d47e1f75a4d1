package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// UsernameMaxLength is the maximum number of characters in a username.
const UsernameMaxLength = 32

// Common validation errors
var (
	ErrBlankUsername    = fmt.Errorf("%w: username cannot be blank", ErrValidation)
	ErrUsernameTooLong  = fmt.Errorf("%w: username cannot be longer than %d characters", ErrValidation, UsernameMaxLength)
	ErrMissingBirthDate = fmt.Errorf("%w: birth date is required", ErrValidation)
)

// User represents a registered user.
// The ID is assigned by the relational store on creation; zero means unset.
type User struct {
	ID        int64
	Username  string
	BirthDate time.Time
}

// Validate checks if the User has valid data.
// Identity is not checked here: create and update have different rules for it.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return NewValidationError("username", "cannot be blank", ErrBlankUsername)
	}

	if utf8.RuneCountInString(u.Username) > UsernameMaxLength {
		return NewValidationError("username", "is too long", ErrUsernameTooLong)
	}

	if u.BirthDate.IsZero() {
		return NewValidationError("birthDate", "is required", ErrMissingBirthDate)
	}

	if !isPast(u.BirthDate) {
		return NewValidationError("birthDate", "must be in the past", ErrBirthDateNotPast)
	}

	return nil
}

// Equal reports whether both users hold the same identity and field values.
func (u *User) Equal(o *User) bool {
	return u.ID == o.ID && u.EqualIgnoringID(o)
}

// EqualIgnoringID compares every field except the store-assigned identity.
func (u *User) EqualIgnoringID(o *User) bool {
	return u.Username == o.Username && u.BirthDate.Equal(o.BirthDate)
}

// isPast reports whether t lies strictly before the current instant.
func isPast(t time.Time) bool {
	return t.Before(time.Now())
}
