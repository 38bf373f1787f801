// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"

	"github.com/alqudimi/portfolio-go/internal/middleware"
	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/service"
)

// TrackEventRequest is the body for POST /api/analytics/track.
type TrackEventRequest struct {
	Type      string         `json:"type"`
	Path      string         `json:"path,omitempty"`
	Referrer  string         `json:"referrer,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Metadata  model.Metadata `json:"metadata,omitempty"`
}

// TrackEvent handles POST /api/analytics/track. IP and user agent come
// from the request itself, never from the body.
func (h *Handler) TrackEvent(w http.ResponseWriter, r *http.Request) {
	var req TrackEventRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !model.IsValidAnalyticsType(req.Type) {
		WriteValidationError(w, map[string]string{"type": "unknown event type"})
		return
	}

	err := h.analytics.Track(r.Context(), service.TrackInput{
		Type:      req.Type,
		Path:      req.Path,
		Referrer:  req.Referrer,
		SessionID: req.SessionID,
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		Metadata:  req.Metadata,
	})
	if err != nil {
		h.writeStoreError(w, "track event", err)
		return
	}
	WriteJSON(w, http.StatusAccepted, Response{Data: map[string]bool{"tracked": true}})
}

// AdminAnalyticsSummary handles GET /api/admin/analytics/summary.
// ?days=N widens the window (default 30); country names follow the
// request language.
func (h *Handler) AdminAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 365 {
			WriteBadRequest(w, "days must be an integer between 1 and 365", nil)
			return
		}
		days = parsed
	}

	summary, err := h.analytics.Summarize(r.Context(), days, middleware.Lang(r))
	if err != nil {
		h.writeStoreError(w, "summarize analytics", err)
		return
	}
	WriteSuccess(w, summary, nil)
}
