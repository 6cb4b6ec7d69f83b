package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agentstation/ainything/pkg/logging"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(100, logging.NewNopLogger())

	if rl.visitors == nil {
		t.Error("visitors store not initialized")
	}
	if rl.limit != 100 {
		t.Errorf("limit = %d, want 100", rl.limit)
	}
	if rl.interval != time.Minute {
		t.Errorf("interval = %v, want 1m", rl.interval)
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, logging.NewNopLogger())

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("4th request should be denied")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("other IPs have their own budget")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, logging.NewNopLogger())
	rl.interval = 10 * time.Millisecond

	if !rl.allow("ip") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("ip") {
		t.Fatal("second request should be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.allow("ip") {
		t.Error("request after window should be allowed")
	}
}

func TestRateLimit_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, logging.NewNopLogger())
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/models", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do(); code != http.StatusOK {
		t.Errorf("first status = %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want 429", code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		want      string
	}{
		{"remote addr", "192.0.2.1:1234", "", "192.0.2.1"},
		{"forwarded single", "192.0.2.1:1234", "203.0.113.5", "203.0.113.5"},
		{"forwarded chain", "192.0.2.1:1234", "203.0.113.5, 10.0.0.1", "203.0.113.5"},
		{"no port", "192.0.2.1", "", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
