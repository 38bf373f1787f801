// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKeyLanguage is the context key for the resolved language code.
const ContextKeyLanguage ContextKey = "language"

// Supported language codes. Arabic is the site's primary language.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Language detects the response language for a request. Priority order:
//
//  1. Query parameter ?lang=ar|en (explicit switch)
//  2. Accept-Language header
//  3. Arabic
//
// The resolved code is stored in the request context for handlers to
// pick the localized field variants.
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := LangArabic

			if q := strings.ToLower(r.URL.Query().Get("lang")); q == LangArabic || q == LangEnglish {
				lang = q
			} else if accept := r.Header.Get("Accept-Language"); accept != "" {
				if matched := matchAcceptLanguage(accept); matched != "" {
					lang = matched
				}
			}

			ctx := context.WithValue(r.Context(), ContextKeyLanguage, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Lang returns the language code resolved for the request, defaulting to
// Arabic when the middleware did not run.
func Lang(r *http.Request) string {
	if lang, ok := r.Context().Value(ContextKeyLanguage).(string); ok {
		return lang
	}
	return LangArabic
}

// matchAcceptLanguage finds the first supported language in an
// Accept-Language header. Quality values are ignored; the header's own
// ordering already expresses preference in practice.
// Format: en-US,en;q=0.9,ar;q=0.8
func matchAcceptLanguage(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		langPart := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(langPart, "-"); idx > 0 {
			langPart = langPart[:idx]
		}
		switch strings.ToLower(langPart) {
		case LangArabic:
			return LangArabic
		case LangEnglish:
			return LangEnglish
		}
	}
	return ""
}
