package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/z5ni/catalog-api/pkg/app"
	"github.com/z5ni/catalog-api/pkg/auth"
	"github.com/z5ni/catalog-api/services/catalog/application/handlers"
	appsvcs "github.com/z5ni/catalog-api/services/catalog/application/services"
)

// CatalogRoutes registers the item endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	apiKey := auth.APIKeyUnit(a.Config.APIKey)
	admin := auth.AdminUnit(apiKey)
	common := handlers.CommonParamsUnit()

	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(common).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		// Literal segment registered before the dynamic {id} so it is never
		// shadowed.
		r.Get("/typed/{id}", handlers.TypedItem)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
	})

	r.Get("/items-query", handlers.ItemsQuery)
	r.Get("/items-optional", handlers.ItemsOptional)
	r.Get("/items-required", handlers.ItemsRequired)

	r.Get("/secure-data", handlers.SecureData(apiKey))
	r.Get("/admin", handlers.AdminArea(admin))
}
