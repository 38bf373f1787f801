// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimit_AllowsBurstThenThrottles(t *testing.T) {
	handler := RateLimit(5)(okHandler())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 5; i++ {
		if code := send("192.0.2.1"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}
	if code := send("192.0.2.1"); code != http.StatusTooManyRequests {
		t.Errorf("over-limit request: status = %d, want 429", code)
	}

	// Another client has its own bucket.
	if code := send("192.0.2.2"); code != http.StatusOK {
		t.Errorf("fresh client: status = %d, want 200", code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "203.0.113.7:9999", nil, "203.0.113.7"},
		{"remote addr without port", "203.0.113.7", nil, "203.0.113.7"},
		{"x-real-ip wins", "10.0.0.1:80", map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
		{"first forwarded entry", "10.0.0.1:80",
			map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"}, "203.0.113.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLimiterCache_ClearIfExceeds(t *testing.T) {
	cache := newLimiterCache[string](1, 1)
	cache.get("a")
	cache.get("b")
	cache.get("c")

	if cache.clearIfExceeds(5) {
		t.Error("cache below limit should not be cleared")
	}
	if !cache.clearIfExceeds(2) {
		t.Error("cache above limit should be cleared")
	}
	if len(cache.limiters) != 0 {
		t.Errorf("%d limiters remain after clear", len(cache.limiters))
	}
}
