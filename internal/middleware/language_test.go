// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLanguage(t *testing.T) {
	var got string
	handler := Language()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Lang(r)
	}))

	tests := []struct {
		name   string
		url    string
		accept string
		want   string
	}{
		{"default is arabic", "/", "", "ar"},
		{"query switch to english", "/?lang=en", "", "en"},
		{"query switch to arabic", "/?lang=ar", "en-US,en", "ar"},
		{"unknown query falls through", "/?lang=fr", "en-US,en", "en"},
		{"accept-language english", "/", "en-US,en;q=0.9", "en"},
		{"accept-language arabic", "/", "ar-YE,ar;q=0.9,en;q=0.8", "ar"},
		{"unsupported accept-language", "/", "fr-FR,de;q=0.5", "ar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("resolved language = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLang_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := Lang(req); got != "ar" {
		t.Errorf("Lang without middleware = %q, want ar", got)
	}
}
