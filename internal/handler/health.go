// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/alqudimi/portfolio-go/internal/logging"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	storage.HealthStatus
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Health reports the storage state alongside build information. The
// endpoint always answers 200: a degraded process still serves content
// from memory, and load balancers should keep routing to it.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		HealthStatus: h.mgr.Health(),
		Version:      h.info.String(),
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
	}
	WriteJSON(w, http.StatusOK, resp)
}

// DiagnosticsResponse is the body of GET /api/admin/diagnostics.
type DiagnosticsResponse struct {
	Health     storage.HealthStatus `json:"health"`
	Version    string               `json:"version"`
	Uptime     string               `json:"uptime"`
	RecentLogs []logging.Entry      `json:"recent_logs"`
}

// Diagnostics exposes the warning ring buffer for admin troubleshooting.
func (h *Handler) Diagnostics(w http.ResponseWriter, _ *http.Request) {
	resp := DiagnosticsResponse{
		Health:     h.mgr.Health(),
		Version:    h.info.String(),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		RecentLogs: []logging.Entry{},
	}
	if h.recent != nil {
		resp.RecentLogs = h.recent()
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Reconnect triggers an immediate reconnection attempt from the admin
// API instead of waiting for the scheduler's next tick.
func (h *Handler) Reconnect(w http.ResponseWriter, r *http.Request) {
	connected := h.mgr.AttemptDatabaseReconnection(r.Context())
	WriteSuccess(w, map[string]any{
		"connected":      connected,
		"using_database": h.mgr.UsingDatabase(),
	}, nil)
}
