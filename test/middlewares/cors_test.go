package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/andesbooks/inventory-api/internal/api/middlewares"
)

func TestCors_AllowsConfiguredOrigin(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://inventory.example.com")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := mw.Cors(handler)

	req := httptest.NewRequest("GET", "/books", nil)
	req.Header.Set("Origin", "https://inventory.example.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://inventory.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if rec.Header().Get("Vary") != "Origin" {
		t.Error("Expected Vary: Origin")
	}
}

func TestCors_BlocksUnknownOrigin(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://inventory.example.com")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := mw.Cors(handler)

	req := httptest.NewRequest("GET", "/books", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", rec.Code)
	}
}

func TestCors_NoOriginPassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := mw.Cors(handler)

	// Same-origin / curl requests carry no Origin header
	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("No Origin header must not produce an allow header")
	}
}
