package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func ok(context.Context) error   { return nil }
func down(context.Context) error { return fmt.Errorf("connection refused") }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name      string
		db        Pinger
		redis     Pinger
		wantCode  int
		wantRedis string
		wantDB    string
	}{
		{"all up", PingFunc(ok), PingFunc(ok), http.StatusOK, "connected", "connected"},
		{"redis disabled", PingFunc(ok), nil, http.StatusOK, "disabled", "connected"},
		{"database down", PingFunc(down), nil, http.StatusServiceUnavailable, "disabled", "disconnected"},
		{"redis down", PingFunc(ok), PingFunc(down), http.StatusServiceUnavailable, "disconnected", "connected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.db, tt.redis, "memory")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/server/health", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", rec.Code, tt.wantCode)
			}

			var resp HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Database != tt.wantDB || resp.Redis != tt.wantRedis || resp.Cache != "memory" {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}
