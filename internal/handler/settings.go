// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

// ListSettings handles GET /api/settings. The public surface returns the
// full key/value map (all settings here are site chrome, none secret),
// served from cache.
func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.content.SiteSettings(r.Context(), func() ([]model.SiteSetting, error) {
		return h.store().GetSiteSettings(r.Context())
	})
	if err != nil {
		h.writeStoreError(w, "list settings", err)
		return
	}

	kv := make(map[string]string, len(settings))
	for _, s := range settings {
		kv[s.Key] = s.Value
	}
	WriteSuccess(w, kv, &Meta{Total: len(settings)})
}

// AdminListSettings handles GET /api/admin/settings with full records.
func (h *Handler) AdminListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store().GetSiteSettings(r.Context())
	if err != nil {
		h.writeStoreError(w, "list settings", err)
		return
	}
	WriteList(w, settings)
}

// CreateSettingRequest is the request body for creating a setting.
type CreateSettingRequest struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// AdminCreateSetting handles POST /api/admin/settings. Keys are unique;
// a duplicate answers 409.
func (h *Handler) AdminCreateSetting(w http.ResponseWriter, r *http.Request) {
	var req CreateSettingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		WriteValidationError(w, map[string]string{"key": "key is required"})
		return
	}
	if req.Type == "" {
		req.Type = model.SettingTypeString
	}
	if req.Category == "" {
		req.Category = model.SettingCategoryGeneral
	}

	setting, err := h.store().CreateSiteSetting(r.Context(), storage.CreateSiteSettingParams{
		Key:      req.Key,
		Value:    req.Value,
		Type:     req.Type,
		Category: req.Category,
	})
	if err != nil {
		h.writeStoreError(w, "create setting", err)
		return
	}
	h.content.InvalidateSettings(r.Context())
	WriteCreated(w, setting)
}

// UpdateSettingRequest is the request body for updating a setting value.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// AdminUpdateSetting handles PUT /api/admin/settings/{key}.
func (h *Handler) AdminUpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	setting, err := h.store().UpdateSiteSettingByKey(r.Context(), chi.URLParam(r, "key"), req.Value)
	if err != nil {
		h.writeStoreError(w, "update setting", err)
		return
	}
	if setting == nil {
		WriteNotFound(w, "Setting not found")
		return
	}
	h.content.InvalidateSettings(r.Context())
	WriteSuccess(w, setting, nil)
}

// AdminDeleteSetting handles DELETE /api/admin/settings/{id}.
func (h *Handler) AdminDeleteSetting(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteSiteSetting(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete setting", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Setting not found")
		return
	}
	h.content.InvalidateSettings(r.Context())
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
