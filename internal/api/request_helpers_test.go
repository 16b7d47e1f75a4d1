package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dataincloud/resource-api/internal/api/shared"
	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := getPathID(requestWithParam("id", "42"), "id")
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	for _, value := range []string{"", "0", "-3", "abc", "1.5", "99999999999999999999"} {
		t.Run("invalid "+value, func(t *testing.T) {
			_, err := getPathID(requestWithParam("id", value), "id")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidID)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "id", validationErr.Field)
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	t.Run("internal error is not exposed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)

		HandleAPIError(rec, req, errors.New("pq: relation users does not exist"), "custom")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "An unexpected error occurred", body.Error)
	})

	t.Run("custom message for client errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/x", nil)

		HandleAPIError(rec, req, domain.ErrInvalidID, "Bad identity")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "Bad identity", body.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", nil)

		HandleAPIError(rec, req, errors.Join(shared.ErrMalformedBody, errors.New("EOF")), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request format")
	})
}
