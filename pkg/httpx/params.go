package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Helpers for pulling typed values out of query strings and chi path
// parameters. Absent optional parameters fall back to defaults; malformed
// values return an error the handler should turn into a 422 response.

// QueryString returns the named query parameter and whether it was present.
func QueryString(r *http.Request, name string) (string, bool) {
	if !r.URL.Query().Has(name) {
		return "", false
	}
	return r.URL.Query().Get(name), true
}

// QueryInt parses the named query parameter as an int, returning def when absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw, ok := QueryString(r, name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: not a valid integer", name, raw)
	}
	return v, nil
}

// QueryFloat parses the named query parameter as a float64.
// The second return reports whether the parameter was present.
func QueryFloat(r *http.Request, name string) (float64, bool, error) {
	raw, ok := QueryString(r, name)
	if !ok || raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, fmt.Errorf("parse %s=%q: not a valid number", name, raw)
	}
	return v, true, nil
}

// QueryBool parses the named query parameter as a bool ("true"/"false"/"1"/"0").
// The second return reports whether the parameter was present.
func QueryBool(r *http.Request, name string) (bool, bool, error) {
	raw, ok := QueryString(r, name)
	if !ok || raw == "" {
		return false, false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("parse %s=%q: not a valid boolean", name, raw)
	}
	return v, true, nil
}

// PathInt parses the named chi URL parameter as an int.
func PathInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse path %s=%q: not a valid integer", name, raw)
	}
	return v, nil
}
