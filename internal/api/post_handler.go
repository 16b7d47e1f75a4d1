package api

import (
	"log/slog"
	"net/http"

	"github.com/dataincloud/resource-api/internal/api/shared"
	"github.com/dataincloud/resource-api/internal/dto"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/service"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}

	return &PostHandler{
		postService: postService,
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /posts requests.
// The creation date is assigned by the server; an unknown author yields 404.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req dto.PostCreateDto
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.postService.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("post created",
			slog.Int64("post_id", post.ID),
			slog.Int64("user_id", post.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, post)
}

// ListPosts handles GET /posts requests
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ReadAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// GetPost handles GET /posts/{id} requests
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.postService.ReadByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// GetPostAuthor handles GET /posts/{id}/user requests
func (h *PostHandler) GetPostAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.postService.Author(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdatePost handles PUT /posts requests
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req dto.PostDto
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.postService.Update(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("post updated", slog.Int64("post_id", post.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id} requests
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.postService.DeleteByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("post deleted", slog.Int64("post_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}
