package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("unable to open database file") })

	tests := []struct {
		name       string
		method     string
		checks     map[string]Pinger
		wantStatus int
		wantHealth string
		wantIssues []string
	}{
		{
			name:       "all healthy",
			method:     http.MethodGet,
			checks:     map[string]Pinger{"cache": ok, "index": ok},
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
		},
		{
			name:       "index down",
			method:     http.MethodGet,
			checks:     map[string]Pinger{"cache": ok, "index": down},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
			wantIssues: []string{"index_unavailable"},
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			checks:     map[string]Pinger{"cache": ok},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.checks)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantHealth == "" {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantHealth {
				t.Errorf("Status = %q, want %q", resp.Status, tt.wantHealth)
			}
			if len(resp.Checks) != len(tt.checks) {
				t.Errorf("Checks = %v, want %d entries", resp.Checks, len(tt.checks))
			}
			if len(resp.Issues) != len(tt.wantIssues) {
				t.Fatalf("Issues = %v, want %v", resp.Issues, tt.wantIssues)
			}
			for i := range tt.wantIssues {
				if resp.Issues[i] != tt.wantIssues[i] {
					t.Errorf("Issues[%d] = %q, want %q", i, resp.Issues[i], tt.wantIssues[i])
				}
			}
		})
	}
}
