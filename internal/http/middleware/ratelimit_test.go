package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowWithinLimit(t *testing.T) {
	limiter := NewRateLimiter()
	for i := 0; i < 3; i++ {
		if !limiter.Allow("key", 3, time.Minute) {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if limiter.Allow("key", 3, time.Minute) {
		t.Fatal("fourth attempt should be denied")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter()
	if !limiter.Allow("a", 1, time.Minute) {
		t.Fatal("first attempt on a should be allowed")
	}
	if !limiter.Allow("b", 1, time.Minute) {
		t.Fatal("first attempt on b should be allowed")
	}
	if limiter.Allow("a", 1, time.Minute) {
		t.Fatal("second attempt on a should be denied")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	limiter := NewRateLimiter()
	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("first attempt should be allowed")
	}
	if limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("second attempt inside window should be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("attempt after window should be allowed")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter()
	handler := RateLimit(limiter, ClientIP, 2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := do("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := do("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other client should not be limited, got %d", code)
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected host from remote addr, got %q", got)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if got := ClientIP(req); got != "203.0.113.9" {
		t.Fatalf("expected forwarded address, got %q", got)
	}
}
