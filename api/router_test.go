package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewServerHandler(t *testing.T) {
	h := NewServerHandler(Options{CORSOrigins: []string{"http://localhost:3000"}})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/api/health", http.StatusOK},
		{"version", http.MethodGet, "/api/version", http.StatusOK},
		{"menu needs no server", http.MethodGet, "/api/menu", http.StatusOK},
		{"routes without server", http.MethodGet, "/api/routes", http.StatusServiceUnavailable},
		{"unknown api path", http.MethodGet, "/api/nope", http.StatusNotFound},
		{"outside api", http.MethodGet, "/health", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestNewServerHandler_CORS(t *testing.T) {
	h := NewServerHandler(Options{CORSOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/routes/validate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/routes/validate", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin allowed: %q", got)
	}
}
