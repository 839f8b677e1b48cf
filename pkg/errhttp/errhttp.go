// Package errhttp maps domain sentinel errors to HTTP status codes and the
// {"detail": ...} response envelope. Add a case to WriteError for each new
// domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/z5ni/catalog-api/pkg/auth"
	"github.com/z5ni/catalog-api/pkg/httpx"
	"github.com/z5ni/catalog-api/pkg/validator"
	catalogdomain "github.com/z5ni/catalog-api/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes the JSON error
// response. Uses errors.Is/As so wrapped sentinel errors are matched
// correctly. Known sentinels get their canonical client message; anything
// unrecognized becomes a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.Detail(w, http.StatusUnprocessableEntity, verr.Fields)
	case errors.Is(err, catalogdomain.ErrItemNotFound):
		httpx.Detail(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, auth.ErrInvalidAPIKey):
		httpx.Detail(w, http.StatusForbidden, "Invalid API key")
	default:
		httpx.Detail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
