// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"
)

// BearerAuth returns middleware that protects admin routes with a static
// API token. The comparison runs in constant time over SHA-256 digests so
// neither token length nor a matching prefix leaks through timing. An
// empty token disables the admin API entirely rather than leaving it
// open.
func BearerAuth(token string) func(http.Handler) http.Handler {
	want := sha256.Sum256([]byte(token))
	enabled := token != ""

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				WriteAPIError(w, http.StatusServiceUnavailable, "admin_disabled",
					"Admin API is disabled: no API token configured", nil)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized",
					"Missing or malformed Authorization header. Use: Bearer <token>", nil)
				return
			}

			got := sha256.Sum256([]byte(raw))
			if subtle.ConstantTimeCompare(want[:], got[:]) != 1 {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized",
					"Invalid API token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
