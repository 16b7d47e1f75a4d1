package dto

import "time"

// UserCreateDto is the payload for creating a user. It carries no identity.
type UserCreateDto struct {
	Username  string    `json:"username"  validate:"required,notblank,max=32"`
	BirthDate time.Time `json:"birthDate" validate:"required,lt"`
}

// UserDto is the full wire representation of a user.
type UserDto struct {
	ID        int64     `json:"id"        validate:"required,gt=0"`
	Username  string    `json:"username"  validate:"required,notblank,max=32"`
	BirthDate time.Time `json:"birthDate" validate:"required,lt"`
}
