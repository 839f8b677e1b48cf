package handlers

import (
	"net/http"

	"github.com/z5ni/catalog-api/pkg/deps"
	"github.com/z5ni/catalog-api/pkg/httpx"
	"github.com/z5ni/catalog-api/pkg/validator"
)

// CommonParams is the bundle of optional search text and pagination offsets
// shared across list endpoints.
type CommonParams struct {
	Q     *string `json:"q"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
}

// CommonParamsUnit returns the dependency unit that derives CommonParams
// from the query string. Defaults: skip=0, limit=10, q absent (null).
func CommonParamsUnit() *deps.Unit[CommonParams] {
	return deps.New("common_params", func(r *http.Request) (CommonParams, error) {
		p := CommonParams{Limit: 10}

		if q, ok := httpx.QueryString(r, "q"); ok {
			p.Q = &q
		}

		skip, err := httpx.QueryInt(r, "skip", 0)
		if err != nil {
			return CommonParams{}, validator.Invalid("skip", "Must be a valid integer", "int_parsing", r.URL.Query().Get("skip"))
		}
		p.Skip = skip

		limit, err := httpx.QueryInt(r, "limit", 10)
		if err != nil {
			return CommonParams{}, validator.Invalid("limit", "Must be a valid integer", "int_parsing", r.URL.Query().Get("limit"))
		}
		p.Limit = limit

		return p, nil
	})
}
