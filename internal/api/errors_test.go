package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "field validation",
			err:     domain.NewValidationError("header", "must be at least 4 characters", nil),
			status:  http.StatusBadRequest,
			message: "Invalid header: must be at least 4 characters",
		},
		{
			name:    "bare validation sentinel",
			err:     fmt.Errorf("decode: %w", domain.ErrValidation),
			status:  http.StatusBadRequest,
			message: "Validation error",
		},
		{
			name:    "store rejected entity",
			err:     store.ErrInvalidEntity,
			status:  http.StatusBadRequest,
			message: "Invalid entity data",
		},
		{
			name:    "user not found",
			err:     fmt.Errorf("failed to read user: %w", store.ErrUserNotFound),
			status:  http.StatusNotFound,
			message: "User not found",
		},
		{
			name:    "post not found",
			err:     fmt.Errorf("failed to delete post: %w", store.ErrPostNotFound),
			status:  http.StatusNotFound,
			message: "Post not found",
		},
		{
			name:    "profile not found",
			err:     store.ErrProfileNotFound,
			status:  http.StatusNotFound,
			message: "Profile not found",
		},
		{
			name:    "profile exists",
			err:     fmt.Errorf("failed to create profile: %w", store.ErrProfileExists),
			status:  http.StatusConflict,
			message: "Profile already exists",
		},
		{
			name:    "user still referenced",
			err:     store.NewStoreError("user", "delete", "user 1 still owns posts", store.ErrReferenced),
			status:  http.StatusConflict,
			message: "User still owns posts",
		},
		{
			name:    "unknown error",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			message: "An unexpected error occurred",
		},
		{
			name:    "transaction failure",
			err:     fmt.Errorf("commit: %w", store.ErrTransactionFailed),
			status:  http.StatusInternalServerError,
			message: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.message, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_Nil(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
