package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/z5ni/catalog-api/pkg/app"
	"github.com/z5ni/catalog-api/services/users/application/handlers"
)

// UserRoutes registers the user endpoints on the provided chi router.
func UserRoutes(r chi.Router, _ *app.Application) {
	r.Route("/users", func(r chi.Router) {
		// /users/me must match before /users/{id}.
		r.Get("/me", handlers.Me)
		r.Get("/{id}", handlers.GetUser)
		r.Get("/{id}/orders", handlers.Orders)
	})
}
