package handlers

import (
	"net/http"

	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
	appsvcs "github.com/z5ni/catalog-api/services/catalog/application/services"
	"github.com/z5ni/catalog-api/services/catalog/domain/models"
)

// UpdateItemResponse merges the stored record with the optional q query
// parameter echoed back when present.
type UpdateItemResponse struct {
	models.Record
	Q *string `json:"q,omitempty"`
} // @name UpdateItemResponse

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces the record at id with the request body.
//
//	@Summary		Update item
//	@Description	Full-record replacement; the id is not required to pre-exist
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"Item id"
//	@Param			q		query		string		false	"Echoed back when present"
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		200		{object}	UpdateItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var raw models.Item
	if !httpx.DecodeJSON(w, r, &raw) {
		return
	}

	rec, err := h.svc.Item.Update(r.Context(), id, raw)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := UpdateItemResponse{Record: rec}
	if q, present := httpx.QueryString(r, "q"); present {
		resp.Q = &q
	}
	httpx.JSON(w, http.StatusOK, resp)
}
