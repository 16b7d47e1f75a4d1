package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dataincloud/resource-api/internal/api/shared"
	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts a positive integer identity from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed identity if valid
//   - (0, error): A validation error if the parameter is missing, not a number or not positive
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID extracts the identity named paramName and writes a 400
// response when it is invalid.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Debug("invalid path parameter",
				slog.String("param_name", paramName),
				slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into v and writes a 400 response
// when it is malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	return true
}

// HandleAPIError writes the error response for err. The status comes from
// MapErrorToStatusCode. An empty message is replaced by GetSafeErrorMessage;
// internal errors never expose their text.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" || status == http.StatusInternalServerError {
		message = GetSafeErrorMessage(err)
	}
	if errors.Is(err, shared.ErrMalformedBody) {
		status, message = http.StatusBadRequest, "Invalid request format"
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
