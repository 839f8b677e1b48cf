package handlers

import (
	"fmt"
	"net/http"

	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
	appsvcs "github.com/z5ni/catalog-api/services/catalog/application/services"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute acknowledges a delete. Existence is not verified: the confirmation
// message is returned for any well-formed id.
//
//	@Summary	Delete item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		int	true	"Item id"
//	@Success	200	{object}	map[string]string
//	@Failure	422	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Item %d deleted successfully", id),
	})
}
