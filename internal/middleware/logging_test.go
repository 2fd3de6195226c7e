package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRequestLogging(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantMsg string
		wantLvl zapcore.Level
	}{
		{"success", http.StatusCreated, "request completed", zapcore.InfoLevel},
		{"client error", http.StatusNotFound, "request completed", zapcore.InfoLevel},
		{"server error", http.StatusInternalServerError, "request failed", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			h := RequestID(WithRequestLogging(zap.New(core))(next))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/users", nil)
			h.ServeHTTP(rec, req)

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			e := entries[0]
			if e.Message != tt.wantMsg || e.Level != tt.wantLvl {
				t.Errorf("got %s %q; want %s %q", e.Level, e.Message, tt.wantLvl, tt.wantMsg)
			}
			fields := e.ContextMap()
			if fields["status"] != int64(tt.status) {
				t.Errorf("expected status field %d, got %v", tt.status, fields["status"])
			}
			if fields["path"] != "/api/users" {
				t.Errorf("expected path field '/api/users', got %v", fields["path"])
			}
			if fields["request_id"] == "" {
				t.Error("expected request_id field to be set")
			}
		})
	}
}
