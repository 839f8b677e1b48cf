package handlers

import (
	"net/http"

	"github.com/z5ni/catalog-api/pkg/errhttp"
	"github.com/z5ni/catalog-api/pkg/httpx"
	"github.com/z5ni/catalog-api/pkg/validator"
)

// The items-query / items-optional / items-required endpoints demonstrate
// the three query-parameter flavors: defaulted, optional, and mandatory.

// ItemsQuery handles GET /items-query: echoes the pagination parameters
// with defaults skip=0, limit=10.
func ItemsQuery(w http.ResponseWriter, r *http.Request) {
	skip, err := httpx.QueryInt(r, "skip", 0)
	if err != nil {
		errhttp.WriteError(w, validator.Invalid("skip", "Must be a valid integer", "int_parsing", r.URL.Query().Get("skip")))
		return
	}
	limit, err := httpx.QueryInt(r, "limit", 10)
	if err != nil {
		errhttp.WriteError(w, validator.Invalid("limit", "Must be a valid integer", "int_parsing", r.URL.Query().Get("limit")))
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]int{"skip": skip, "limit": limit})
}

// ItemsOptional handles GET /items-optional: a fixed two-item list, plus q
// echoed back when present.
func ItemsOptional(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"items": []string{"Item A", "Item B"},
	}
	if q, ok := httpx.QueryString(r, "q"); ok {
		resp["q"] = q
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// ItemsRequired handles GET /items-required: price is mandatory, is_offer
// optional. A missing or malformed price is a client error.
func ItemsRequired(w http.ResponseWriter, r *http.Request) {
	price, present, err := httpx.QueryFloat(r, "price")
	if !present {
		errhttp.WriteError(w, validator.Invalid("price", "This field is required", "missing", nil))
		return
	}
	if err != nil {
		errhttp.WriteError(w, validator.Invalid("price", "Must be a valid number", "float_parsing", r.URL.Query().Get("price")))
		return
	}

	isOffer, offerPresent, err := httpx.QueryBool(r, "is_offer")
	if err != nil {
		errhttp.WriteError(w, validator.Invalid("is_offer", "Must be a valid boolean", "bool_parsing", r.URL.Query().Get("is_offer")))
		return
	}

	resp := map[string]any{"price": price}
	if offerPresent {
		resp["is_offer"] = isOffer
	}
	httpx.JSON(w, http.StatusOK, resp)
}
