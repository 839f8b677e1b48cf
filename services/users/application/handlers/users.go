package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
	"github.com/z5ni/catalog-api/pkg/validator"
)

// Me handles GET /users/me. Registered before the dynamic {id} route so the
// literal segment is never shadowed.
func Me(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"user": "me"})
}

// GetUser handles GET /users/{id}: echoes the coerced integer id.
func GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int{"user_id": id})
}

// Orders handles GET /users/{id}/orders: a fixed two-order list, plus the
// status filter echoed back when present.
func Orders(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	resp := map[string]any{
		"user_id": id,
		"orders":  []string{"Order 001", "Order 002"},
	}
	if status, ok := httpx.QueryString(r, "status"); ok {
		resp["status"] = status
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := httpx.PathInt(r, "id")
	if err != nil {
		errhttp.WriteError(w, validator.Invalid("id", "Must be a valid integer", "int_parsing", chi.URLParam(r, "id")))
		return 0, false
	}
	return id, true
}
