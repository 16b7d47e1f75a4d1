package api

import (
	"log/slog"
	"net/http"

	apiMiddleware "github.com/dataincloud/resource-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Users    *UserHandler
	Posts    *PostHandler
	Profiles *ProfileHandler
	Health   *HealthHandler
}

// NewRouter creates the application router with all routes and middleware.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(logger))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Users.CreateUser)
		r.Get("/", h.Users.ListUsers)
		r.Put("/", h.Users.UpdateUser)
		r.Get("/{id}", h.Users.GetUser)
		r.Delete("/{id}", h.Users.DeleteUser)

		// Legacy profile paths kept for existing clients.
		r.Get("/profiles", h.Profiles.ListProfiles)
		r.Put("/profiles", h.Profiles.SaveProfile)
		r.Get("/{id}/profiles", h.Profiles.GetProfile)
		r.Delete("/{id}/profiles", h.Profiles.DeleteProfile)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Post("/", h.Posts.CreatePost)
		r.Get("/", h.Posts.ListPosts)
		r.Put("/", h.Posts.UpdatePost)
		r.Get("/{id}", h.Posts.GetPost)
		r.Get("/{id}/user", h.Posts.GetPostAuthor)
		r.Delete("/{id}", h.Posts.DeletePost)
	})

	r.Route("/profiles", func(r chi.Router) {
		r.Post("/", h.Profiles.CreateProfile)
		r.Get("/", h.Profiles.ListProfiles)
		r.Put("/", h.Profiles.SaveProfile)
		r.Get("/{id}", h.Profiles.GetProfile)
		r.Delete("/{id}", h.Profiles.DeleteProfile)
	})

	r.Get("/health", h.Health.Health)

	return r
}
