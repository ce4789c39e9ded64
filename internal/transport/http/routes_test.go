package httptransport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xiaocao-xixi/betting-system/internal/config"
	"github.com/xiaocao-xixi/betting-system/internal/testutil"
)

func TestRoutesMounted(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	router := NewRouter(st, config.ServerConfig{AdminAPIKey: "admin-key"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /healthz 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/public/accounts", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /api/public/accounts 200, got %d", w.Code)
	}

	// Empty body should fail decode and prove the route is mounted.
	req = httptest.NewRequest(http.MethodPost, "/api/bets", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected /api/bets 400, got %d", w.Code)
	}

	// Admin routes reject without the key.
	req = httptest.NewRequest(http.MethodPost, "/api/deposit", bytes.NewBufferString(`{}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected /api/deposit 401 without key, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/deposit", bytes.NewBufferString(`{}`))
	req.Header.Set("X-Admin-Key", "admin-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected /api/deposit 400 with key and empty body, got %d", w.Code)
	}
}

func TestErrorResponsesAreJSON(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	router := NewRouter(st, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/bets", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var errResp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp["error"] != "invalid_json" {
		t.Fatalf("expected invalid_json, got %q", errResp["error"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/public/accounts/missing/balance", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	errResp = map[string]string{}
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp["error"] != "account_not_found" {
		t.Fatalf("expected account_not_found, got %q", errResp["error"])
	}
}
