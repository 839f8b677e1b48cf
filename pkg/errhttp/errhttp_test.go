package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/z5ni/catalog-api/pkg/auth"
	"github.com/z5ni/catalog-api/pkg/validator"
	catalogdomain "github.com/z5ni/catalog-api/services/catalog/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", catalogdomain.ErrItemNotFound, http.StatusNotFound},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item 1: %w", catalogdomain.ErrItemNotFound), http.StatusNotFound},
		{"ErrInvalidAPIKey", auth.ErrInvalidAPIKey, http.StatusForbidden},
		{"wrapped ErrInvalidAPIKey", fmt.Errorf("resolve admin: %w", auth.ErrInvalidAPIKey), http.StatusForbidden},
		{"ValidationError", validator.Invalid("name", "too short", "too_short", "ab"), http.StatusUnprocessableEntity},
		{"wrapped ValidationError", fmt.Errorf("create item: %w", validator.Invalid("price", "too low", "greater_than", 0)), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_CanonicalMessages(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantDetail string
	}{
		{"not found", fmt.Errorf("get item 9: %w", catalogdomain.ErrItemNotFound), "Item not found"},
		{"forbidden", fmt.Errorf("resolve key: %w", auth.ErrInvalidAPIKey), "Invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["detail"] != tt.wantDetail {
				t.Fatalf("expected canonical detail %q, got %v", tt.wantDetail, body["detail"])
			}
		})
	}
}

func TestWriteError_ValidationDetailIsArray(t *testing.T) {
	verr := validator.Invalid("name", "too short", "too_short", "ab")
	verr.Fields = append(verr.Fields, validator.Invalid("price", "too low", "greater_than", -1).Fields...)

	w := httptest.NewRecorder()
	WriteError(w, verr)

	var body struct {
		Detail []map[string]any `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if len(body.Detail) != 2 {
		t.Fatalf("expected both violations in detail, got %v", body.Detail)
	}
	first := body.Detail[0]
	for _, key := range []string{"field", "message", "type", "value"} {
		if _, ok := first[key]; !ok {
			t.Fatalf("violation missing %q key: %v", key, first)
		}
	}
}

func TestWriteError_UnknownErrorDoesNotLeak(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pg: password authentication failed for user postgres"))

	if strings.Contains(w.Body.String(), "postgres") {
		t.Fatalf("internal detail leaked: %s", w.Body.String())
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrItemNotFound)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected Content-Type %q", ct)
	}
}
