package dto

import "time"

// PostCreateDto is the payload for creating a post.
// The creation timestamp is assigned by the server.
type PostCreateDto struct {
	Header      string `json:"header"      validate:"required,notblank,min=4,max=64"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"      validate:"required,gt=0"`
}

// PostDto is the full wire representation of a post.
type PostDto struct {
	ID          int64     `json:"id"          validate:"required,gt=0"`
	Header      string    `json:"header"      validate:"required,notblank,min=4,max=64"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate" validate:"required"`
	UserID      int64     `json:"userId"      validate:"required,gt=0"`
}
