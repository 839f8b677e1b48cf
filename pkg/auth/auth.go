// Package auth provides the API-key dependency units.
//
// Authentication here is deliberately a static shared secret passed as the
// api_key query parameter. The admin unit layers on top of the key check:
// it is never invoked when the key check fails, and within one request the
// key is verified at most once no matter how many units depend on it.
package auth

import (
	"errors"
	"net/http"

	"github.com/z5ni/catalog-api/pkg/deps"
)

// ErrInvalidAPIKey indicates a missing or incorrect api_key query parameter.
// errhttp maps it to 403 Forbidden.
var ErrInvalidAPIKey = errors.New("invalid API key")

// Admin is the principal produced by the admin unit.
type Admin struct {
	Role string
}

// APIKeyUnit returns the unit that verifies the api_key query parameter
// against the configured shared secret and yields the accepted key.
func APIKeyUnit(expected string) *deps.Unit[string] {
	return deps.New("api_key", func(r *http.Request) (string, error) {
		key := r.URL.Query().Get("api_key")
		if key == "" || key != expected {
			return "", ErrInvalidAPIKey
		}
		return key, nil
	})
}

// AdminUnit returns the unit that grants admin access. Its prerequisite is
// the given API-key unit; a failed key check short-circuits before any
// admin logic runs.
func AdminUnit(apiKey *deps.Unit[string]) *deps.Unit[Admin] {
	return deps.New("admin", func(r *http.Request) (Admin, error) {
		if _, err := apiKey.Resolve(r); err != nil {
			return Admin{}, err
		}
		return Admin{Role: "admin"}, nil
	})
}
