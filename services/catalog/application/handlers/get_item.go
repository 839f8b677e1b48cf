package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
	"github.com/z5ni/catalog-api/pkg/validator"
	appsvcs "github.com/z5ni/catalog-api/services/catalog/application/services"
)

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute fetches one item record.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		int	true	"Item id"
//	@Success	200	{object}	models.Record
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Item.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, rec)
}

// TypedItem handles GET /items/typed/{id}: it echoes the path parameter
// after integer coercion together with its Go type name.
func TypedItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"item_id": id,
		"type":    fmt.Sprintf("%T", id),
	})
}

// pathID parses the {id} path segment, writing the 422 response itself on
// malformed input.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := httpx.PathInt(r, "id")
	if err != nil {
		errhttp.WriteError(w, validator.Invalid("id", "Must be a valid integer", "int_parsing", chi.URLParam(r, "id")))
		return 0, false
	}
	return id, true
}
