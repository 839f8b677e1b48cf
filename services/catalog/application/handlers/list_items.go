package handlers

import (
	"net/http"

	"github.com/z5ni/catalog-api/pkg/deps"
	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	common *deps.Unit[CommonParams]
}

// NewListItemsHandler returns a ListItemsHandler using the given
// common-params unit.
func NewListItemsHandler(common *deps.Unit[CommonParams]) *ListItemsHandler {
	return &ListItemsHandler{common: common}
}

// Execute lists items through the injected common params.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		q		query		string	false	"Search text"
//	@Param		skip	query		int		false	"Pagination offset"	default(0)
//	@Param		limit	query		int		false	"Page size"			default(10)
//	@Success	200		{object}	map[string]any
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	params, err := h.common.Resolve(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Items list",
		"params":  params,
	})
}
