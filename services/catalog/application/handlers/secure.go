package handlers

import (
	"net/http"

	"github.com/z5ni/catalog-api/pkg/auth"
	"github.com/z5ni/catalog-api/pkg/deps"
	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
)

// SecureData returns the handler for GET /secure-data, guarded by the
// API-key unit.
func SecureData(apiKey *deps.Unit[string]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := apiKey.Resolve(r); err != nil {
			errhttp.WriteError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{
			"message": "Access granted to secure data",
		})
	}
}

// AdminArea returns the handler for GET /admin, guarded by the admin unit.
// The admin unit resolves the API-key unit first; a bad key short-circuits
// before any admin logic runs, and a key already verified by another unit
// in this request is not checked again.
func AdminArea(admin *deps.Unit[auth.Admin]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := admin.Resolve(r)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{
			"message": "Welcome, admin",
			"role":    principal.Role,
		})
	}
}
