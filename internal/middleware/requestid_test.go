package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func TestRequestID_Generated(t *testing.T) {
	dummy := &dummyHandler{}
	h := RequestID(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/alice", nil)
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called")
	}
	id := GetRequestIDFromContext(dummy.ctx)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected generated UUID, got %q: %v", id, err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Errorf("expected response header %q, got %q", id, got)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	dummy := &dummyHandler{}
	h := RequestID(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/alice", nil)
	req.Header.Set(RequestIDHeader, "trace-42")
	h.ServeHTTP(rec, req)

	if got := GetRequestIDFromContext(dummy.ctx); got != "trace-42" {
		t.Errorf("expected context request id 'trace-42', got '%s'", got)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "trace-42" {
		t.Errorf("expected response header 'trace-42', got '%s'", got)
	}
}

func TestGetRequestIDFromContext(t *testing.T) {
	empty := GetRequestIDFromContext(context.Background())
	if empty != "" {
		t.Errorf("expected empty string for missing request id, got '%s'", empty)
	}
	ctx := context.WithValue(context.Background(), requestIDKey, "abc")
	if val := GetRequestIDFromContext(ctx); val != "abc" {
		t.Errorf("expected 'abc', got '%s'", val)
	}
}
