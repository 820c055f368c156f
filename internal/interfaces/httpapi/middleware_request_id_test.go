package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
)

type staticIDGenerator struct {
	id  string
	err error
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, g.err
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	handler := RequestID(staticIDGenerator{id: "generated-1"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))

	if seen != "generated-1" {
		t.Fatalf("unexpected context request id: %q", seen)
	}
	if got := rec.Header().Get(requestIDHeader); got != "generated-1" {
		t.Fatalf("unexpected response header: %q", got)
	}
}

func TestRequestID_KeepsCallerValue(t *testing.T) {
	handler := RequestID(staticIDGenerator{id: "unused"}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	req.Header.Set(requestIDHeader, "caller-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "caller-42" {
		t.Fatalf("unexpected response header: %q", got)
	}
}

func TestRequestID_GeneratorFailureStillServes(t *testing.T) {
	called := false
	handler := RequestID(staticIDGenerator{err: errors.New("no entropy")}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))

	if !called {
		t.Fatalf("expected next handler to run")
	}
	if got := rec.Header().Get(requestIDHeader); got != "" {
		t.Fatalf("expected no header, got %q", got)
	}
}

func TestRequestID_ReplacesUnsafeCallerValue(t *testing.T) {
	handler := RequestID(staticIDGenerator{id: "generated-2"}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	req.Header.Set(requestIDHeader, "bad id\twith tabs")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "generated-2" {
		t.Fatalf("unexpected response header: %q", got)
	}
}
