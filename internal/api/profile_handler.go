package api

import (
	"log/slog"
	"net/http"

	"github.com/dataincloud/resource-api/internal/api/shared"
	"github.com/dataincloud/resource-api/internal/dto"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/service"
)

// ProfileHandler handles profile-related HTTP requests.
// Profiles are addressed by the owning user's ID.
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService service.ProfileService, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProfileHandler")
	}

	return &ProfileHandler{
		profileService: profileService,
		logger:         logger.With(slog.String("component", "profile_handler")),
	}
}

// CreateProfile handles POST /profiles requests.
// A second profile for the same user yields 409.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileDto
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.profileService.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("profile created", slog.Int64("user_id", profile.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, profile)
}

// ListProfiles handles GET /profiles requests
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.ReadAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profiles)
}

// GetProfile handles GET /profiles/{id} requests
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.ReadByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// SaveProfile handles PUT /profiles requests. It replaces the profile when
// one exists (200) and creates it otherwise (201).
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileDto
	if !decodeBody(w, r, &req) {
		return
	}

	profile, outcome, err := h.profileService.Save(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("profile saved",
			slog.Int64("user_id", profile.UserID),
			slog.String("outcome", outcome.String()))

	status := http.StatusOK
	if outcome == service.SaveCreated {
		status = http.StatusCreated
	}
	shared.RespondWithJSON(w, r, status, profile)
}

// DeleteProfile handles DELETE /profiles/{id} requests
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.DeleteByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("profile deleted", slog.Int64("user_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}
