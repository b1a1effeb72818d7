package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseRecorderTracksImplicitStatus(t *testing.T) {
	rec := &responseRecorder{ResponseWriter: httptest.NewRecorder()}

	n, err := rec.Write([]byte(`{"status":"ok"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.status != http.StatusOK {
		t.Fatalf("status = %d, want implicit 200", rec.status)
	}
	if rec.bytes != n {
		t.Fatalf("bytes = %d, want %d", rec.bytes, n)
	}
}

func TestResponseRecorderKeepsExplicitStatus(t *testing.T) {
	rec := &responseRecorder{ResponseWriter: httptest.NewRecorder()}

	rec.WriteHeader(http.StatusUnprocessableEntity)
	if _, err := rec.Write([]byte("nope")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.status)
	}
}

func TestRequestLoggerPassesResponseThrough(t *testing.T) {
	handler := requestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/games?game_id=abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec.Body.String() != "missing" {
		t.Fatalf("body = %q, want %q", rec.Body.String(), "missing")
	}
}
