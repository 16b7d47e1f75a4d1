package api

import (
	"log/slog"
	"net/http"

	"github.com/dataincloud/resource-api/internal/api/shared"
	"github.com/dataincloud/resource-api/internal/dto"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateDto
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.userService.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("user created", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// ListUsers handles GET /users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ReadAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.ReadByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateUser handles PUT /users requests.
// The identity travels in the body; unknown identities yield 404.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserDto
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.userService.Update(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("user updated", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id} requests.
// It responds with the state of the user before deletion.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.DeleteByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("user deleted", slog.Int64("user_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
