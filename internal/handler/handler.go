// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the REST API handlers for the portfolio.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alqudimi/portfolio-go/internal/cache"
	"github.com/alqudimi/portfolio-go/internal/config"
	"github.com/alqudimi/portfolio-go/internal/logging"
	"github.com/alqudimi/portfolio-go/internal/service"
	"github.com/alqudimi/portfolio-go/internal/storage"
	"github.com/alqudimi/portfolio-go/internal/version"
)

// maxBodySize caps request bodies on every write endpoint.
const maxBodySize = 1 << 20 // 1 MiB

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	mgr       *storage.Manager
	content   *cache.ContentCache
	blog      *service.BlogService
	analytics *service.AnalyticsService
	cfg       *config.Config
	log       *slog.Logger
	info      *version.Info
	recent    func() []logging.Entry
	startTime time.Time
}

// Options carries the dependencies for NewHandler. Recent may be nil when
// no log buffer is wired; the diagnostics endpoint then reports an empty
// list.
type Options struct {
	Manager   *storage.Manager
	Content   *cache.ContentCache
	Blog      *service.BlogService
	Analytics *service.AnalyticsService
	Config    *config.Config
	Log       *slog.Logger
	Version   *version.Info
	Recent    func() []logging.Entry
}

// NewHandler creates the API handler.
func NewHandler(opts Options) *Handler {
	return &Handler{
		mgr:       opts.Manager,
		content:   opts.Content,
		blog:      opts.Blog,
		analytics: opts.Analytics,
		cfg:       opts.Config,
		log:       opts.Log,
		info:      opts.Version,
		recent:    opts.Recent,
		startTime: time.Now(),
	}
}

// store returns whichever backend is currently active.
func (h *Handler) store() storage.Storage {
	return h.mgr.Store()
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains list metadata.
type Meta struct {
	Total int `json:"total"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteList writes a list response with a total count.
func WriteList[T any](w http.ResponseWriter, items []T) {
	WriteSuccess(w, items, &Meta{Total: len(items)})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteConflict writes a 409 Conflict response.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, "conflict", message, nil)
}

// WriteValidationError writes a 422 response with per-field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// WriteNotSupported writes a 501 response for operations the active
// backend does not implement.
func WriteNotSupported(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotImplemented, "not_supported", message, nil)
}

// writeStoreError translates a storage failure into an API response.
func (h *Handler) writeStoreError(w http.ResponseWriter, action string, err error) {
	if errors.Is(err, storage.ErrNotImplemented) {
		WriteNotSupported(w, "This feature requires database storage, which is currently unavailable")
		return
	}
	if storage.IsConflict(err) {
		WriteConflict(w, "A record with the same unique field already exists")
		return
	}
	h.log.Error("storage operation failed", "action", action, "error", err)
	WriteError(w, http.StatusInternalServerError, "internal_error", "Failed to "+action, nil)
}

// decodeBody parses a JSON request body into dst with a size cap. It
// writes the error response itself and reports whether decoding worked.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			WriteBadRequest(w, "Request body is empty", nil)
			return false
		}
		WriteBadRequest(w, "Invalid JSON body: "+err.Error(), nil)
		return false
	}
	return true
}
