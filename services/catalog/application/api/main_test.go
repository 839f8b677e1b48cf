package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/z5ni/catalog-api/pkg/app"
	"github.com/z5ni/catalog-api/pkg/config"
	"github.com/z5ni/catalog-api/pkg/deps"
	"github.com/z5ni/catalog-api/services/catalog/infrastructure/persistence/memory"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Use(deps.Middleware)

	a := &app.Application{
		Config: &config.Config{APIKey: "abc"},
		Store:  memory.NewItemRepository(),
	}
	CatalogRoutes(r, a)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("response body is not valid JSON: %v\nbody: %s", err, w.Body.String())
	}
}

// detailFields extracts the violation list from a 422 {"detail": [...]} body.
func detailFields(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body struct {
		Detail []map[string]any `json:"detail"`
	}
	decodeBody(t, w, &body)
	if body.Detail == nil {
		t.Fatalf("expected detail array, body: %s", w.Body.String())
	}
	return body.Detail
}

func hasViolation(fields []map[string]any, field, typ string) bool {
	for _, f := range fields {
		if f["field"] == field && f["type"] == typ {
			return true
		}
	}
	return false
}

func TestPostItems(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid item returns 201 with assigned id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/items", `{"name":"Gaming Keyboard","price":49.99}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var rec map[string]any
		decodeBody(t, w, &rec)
		if rec["item_id"] != float64(1) {
			t.Fatalf("expected item_id 1, got %v", rec["item_id"])
		}
		if rec["name"] != "Gaming Keyboard" {
			t.Fatalf("unexpected name %v", rec["name"])
		}
		if tags, ok := rec["tags"].([]any); !ok || len(tags) != 0 {
			t.Fatalf("expected empty tags array, got %v", rec["tags"])
		}
	})

	t.Run("ids are sequential", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/items", `{"name":"Desk Lamp","price":10}`)
		var rec map[string]any
		decodeBody(t, w, &rec)
		if rec["item_id"] != float64(2) {
			t.Fatalf("expected item_id 2, got %v", rec["item_id"])
		}
	})

	t.Run("name is title-cased", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/items", `{"name":"trackball mouse","price":25}`)
		var rec map[string]any
		decodeBody(t, w, &rec)
		if rec["name"] != "Trackball Mouse" {
			t.Fatalf("expected normalized name, got %v", rec["name"])
		}
	})

	t.Run("invalid item returns 422 with all violations", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/items", `{"name":"Ab","price":-5,"code":"bogus"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}

		fields := detailFields(t, w)
		if !hasViolation(fields, "name", "too_short") {
			t.Fatalf("missing name violation: %v", fields)
		}
		if !hasViolation(fields, "price", "greater_than") {
			t.Fatalf("missing price violation: %v", fields)
		}
		if !hasViolation(fields, "code", "string_pattern_mismatch") {
			t.Fatalf("missing code violation: %v", fields)
		}
	})

	t.Run("rejected item is not stored", func(t *testing.T) {
		doRequest(t, router, http.MethodPost, "/items", `{"name":"Ab","price":10}`)

		w := doRequest(t, router, http.MethodPost, "/items", `{"name":"Next Valid","price":1}`)
		var rec map[string]any
		decodeBody(t, w, &rec)
		if rec["item_id"] != float64(4) {
			t.Fatalf("rejected items must not consume ids, got %v", rec["item_id"])
		}
	})

	t.Run("semantic name rule returns value_error", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/items", `{"name":"SuperAdmin Panel","price":10}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		fields := detailFields(t, w)
		if !hasViolation(fields, "name", "value_error") {
			t.Fatalf("expected semantic name violation: %v", fields)
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/items", `{"name":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["detail"] != "Invalid JSON" {
			t.Fatalf("unexpected detail: %v", body["detail"])
		}
	})
}

func TestGetItem(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/items", `{"name":"Gaming Keyboard","price":49.99}`)

	t.Run("existing id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var rec map[string]any
		decodeBody(t, w, &rec)
		if rec["item_id"] != float64(1) || rec["name"] != "Gaming Keyboard" {
			t.Fatalf("unexpected record: %v", rec)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items/999", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["detail"] != "Item not found" {
			t.Fatalf("unexpected detail: %v", body["detail"])
		}
	})

	t.Run("non-integer id returns 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items/abc", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		fields := detailFields(t, w)
		if !hasViolation(fields, "id", "int_parsing") {
			t.Fatalf("expected int_parsing violation: %v", fields)
		}
	})
}

func TestTypedItem(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/items/typed/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	decodeBody(t, w, &body)
	if body["item_id"] != float64(7) {
		t.Fatalf("expected coerced id 7, got %v", body["item_id"])
	}
	if body["type"] != "int" {
		t.Fatalf("expected type int, got %v", body["type"])
	}
}

func TestPutItem(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/items", `{"name":"Gaming Keyboard","price":49.99}`)

	t.Run("replaces the record", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/items/1", `{"name":"Ergonomic Mouse","price":19.99}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["item_id"] != float64(1) || body["name"] != "Ergonomic Mouse" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, present := body["q"]; present {
			t.Fatalf("q must be omitted when absent: %v", body)
		}
	})

	t.Run("echoes q when present", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/items/1?q=refresh", `{"name":"Ergonomic Mouse","price":19.99}`)
		var body map[string]any
		decodeBody(t, w, &body)
		if body["q"] != "refresh" {
			t.Fatalf("expected q echoed, got %v", body)
		}
	})

	t.Run("unknown id still succeeds", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/items/50", `{"name":"Phantom Item","price":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["item_id"] != float64(50) {
			t.Fatalf("expected echoed id 50, got %v", body["item_id"])
		}
	})

	t.Run("invalid body returns 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/items/1", `{"name":"X","price":0}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestDeleteItem(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/items", `{"name":"Gaming Keyboard","price":49.99}`)

	t.Run("returns confirmation message", func(t *testing.T) {
		w := doRequest(t, router, http.MethodDelete, "/items/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		decodeBody(t, w, &body)
		if body["message"] != "Item 5 deleted successfully" {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("store is untouched", func(t *testing.T) {
		doRequest(t, router, http.MethodDelete, "/items/1", "")

		w := doRequest(t, router, http.MethodGet, "/items/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected item to survive delete, got %d", w.Code)
		}
	})
}

func TestListItems_CommonParams(t *testing.T) {
	router := newTestRouter(t)

	t.Run("defaults", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Message string `json:"message"`
			Params  struct {
				Q     *string `json:"q"`
				Skip  int     `json:"skip"`
				Limit int     `json:"limit"`
			} `json:"params"`
		}
		decodeBody(t, w, &body)
		if body.Message != "Items list" {
			t.Fatalf("unexpected message %q", body.Message)
		}
		if body.Params.Q != nil || body.Params.Skip != 0 || body.Params.Limit != 10 {
			t.Fatalf("unexpected defaults: %+v", body.Params)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items?q=keyboard&skip=5&limit=2", "")
		var body struct {
			Params struct {
				Q     *string `json:"q"`
				Skip  int     `json:"skip"`
				Limit int     `json:"limit"`
			} `json:"params"`
		}
		decodeBody(t, w, &body)
		if body.Params.Q == nil || *body.Params.Q != "keyboard" {
			t.Fatalf("expected q keyboard, got %+v", body.Params)
		}
		if body.Params.Skip != 5 || body.Params.Limit != 2 {
			t.Fatalf("unexpected params: %+v", body.Params)
		}
	})

	t.Run("malformed skip returns 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items?skip=abc", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		fields := detailFields(t, w)
		if !hasViolation(fields, "skip", "int_parsing") {
			t.Fatalf("expected int_parsing violation: %v", fields)
		}
	})
}

func TestItemsQuery(t *testing.T) {
	router := newTestRouter(t)

	t.Run("defaults", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-query", "")
		var body map[string]int
		decodeBody(t, w, &body)
		if body["skip"] != 0 || body["limit"] != 10 {
			t.Fatalf("unexpected defaults: %v", body)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-query?skip=3&limit=7", "")
		var body map[string]int
		decodeBody(t, w, &body)
		if body["skip"] != 3 || body["limit"] != 7 {
			t.Fatalf("unexpected values: %v", body)
		}
	})
}

func TestItemsOptional(t *testing.T) {
	router := newTestRouter(t)

	t.Run("without q", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-optional", "")
		var body map[string]any
		decodeBody(t, w, &body)
		items, ok := body["items"].([]any)
		if !ok || len(items) != 2 {
			t.Fatalf("expected fixed two-item list, got %v", body)
		}
		if _, present := body["q"]; present {
			t.Fatalf("q must be absent: %v", body)
		}
	})

	t.Run("with q", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-optional?q=lamp", "")
		var body map[string]any
		decodeBody(t, w, &body)
		if body["q"] != "lamp" {
			t.Fatalf("expected q echoed, got %v", body)
		}
	})
}

func TestItemsRequired(t *testing.T) {
	router := newTestRouter(t)

	t.Run("price present", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-required?price=49.99", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["price"] != 49.99 {
			t.Fatalf("unexpected price %v", body["price"])
		}
		if _, present := body["is_offer"]; present {
			t.Fatalf("is_offer must be absent: %v", body)
		}
	})

	t.Run("price missing returns 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-required", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		fields := detailFields(t, w)
		if !hasViolation(fields, "price", "missing") {
			t.Fatalf("expected missing violation: %v", fields)
		}
	})

	t.Run("malformed price returns 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-required?price=cheap", "")
		fields := detailFields(t, w)
		if !hasViolation(fields, "price", "float_parsing") {
			t.Fatalf("expected float_parsing violation: %v", fields)
		}
	})

	t.Run("is_offer echoed when present", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-required?price=10&is_offer=true", "")
		var body map[string]any
		decodeBody(t, w, &body)
		if body["is_offer"] != true {
			t.Fatalf("expected is_offer true, got %v", body)
		}
	})

	t.Run("malformed is_offer returns 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/items-required?price=10&is_offer=maybe", "")
		fields := detailFields(t, w)
		if !hasViolation(fields, "is_offer", "bool_parsing") {
			t.Fatalf("expected bool_parsing violation: %v", fields)
		}
	})
}

func TestSecureData(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid key", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/secure-data?api_key=abc", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		decodeBody(t, w, &body)
		if body["message"] != "Access granted to secure data" {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("wrong key returns 403", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/secure-data?api_key=nope", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["detail"] != "Invalid API key" {
			t.Fatalf("unexpected detail: %v", body["detail"])
		}
	})

	t.Run("missing key returns 403", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/secure-data", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestAdminArea(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid key grants the admin role", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/admin?api_key=abc", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		decodeBody(t, w, &body)
		if body["message"] != "Welcome, admin" || body["role"] != "admin" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("wrong key short-circuits with 403", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/admin?api_key=nope", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["detail"] != "Invalid API key" {
			t.Fatalf("unexpected detail: %v", body["detail"])
		}
	})
}
