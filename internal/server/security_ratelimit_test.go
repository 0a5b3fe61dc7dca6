package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "10.0.0.42"
	req := httptest.NewRequest("POST", "/api/v1/webhook/loot", nil)
	req.RemoteAddr = ip + ":9131"

	// Fill the per-IP window right up to the limit
	for i := 0; i < MaxRequestsPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// One more trips the limiter
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != MaxRequestsPerWindow+1 {
		t.Errorf("expected count %d, got %d", MaxRequestsPerWindow+1, count)
	}
}
