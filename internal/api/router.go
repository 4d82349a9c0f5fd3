package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/azmath1924/go-rest-starter/internal/api/middleware"
	"github.com/azmath1924/go-rest-starter/internal/config"
	"github.com/azmath1924/go-rest-starter/internal/service"
)

// NewRouter builds the application router: middleware chain, the static
// route table, and the catch-all for unmatched routes. Routes are registered
// explicitly so the full HTTP surface is auditable in one place.
func NewRouter(users service.UserService, cfg config.ServerConfig, logger *slog.Logger) http.Handler {
	responder := NewErrorResponder(!cfg.IsProduction(), logger)
	userHandler := NewUserHandler(users, responder)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace)
	r.Use(middleware.Recoverer(responder))
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})

	// Unknown paths and unknown methods on known paths both fall through to
	// the standardized route-not-found response.
	r.NotFound(responder.RouteNotFound)
	r.MethodNotAllowed(responder.RouteNotFound)

	return r
}
