package handlers

import (
	"net/http"

	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
	appsvcs "github.com/z5ni/catalog-api/services/catalog/application/services"
	"github.com/z5ni/catalog-api/services/catalog/domain/models"
)

// ItemRequest documents the request body for POST /items and PUT /items/{id}.
type ItemRequest struct {
	Name        string   `json:"name"        example:"Gaming Keyboard"`
	Description *string  `json:"description" example:"Mechanical, RGB"`
	Price       float64  `json:"price"       example:"49.99"`
	Tax         *float64 `json:"tax"         example:"4.5"`
	Code        *string  `json:"code"        example:"code-123"`
	Tags        []string `json:"tags"`
} // @name ItemRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Detail any `json:"detail"`
} // @name ErrorResponse

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Validates the item, stores it under the next id, and returns the record
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		201		{object}	models.Record
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var raw models.Item
	if !httpx.DecodeJSON(w, r, &raw) {
		return
	}

	rec, err := h.svc.Item.Create(r.Context(), raw)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, rec)
}
