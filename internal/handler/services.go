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

// CreateServiceRequest is the request body for creating a service.
type CreateServiceRequest struct {
	Title         string           `json:"title"`
	TitleEn       *string          `json:"title_en,omitempty"`
	Description   string           `json:"description"`
	DescriptionEn *string          `json:"description_en,omitempty"`
	Icon          string           `json:"icon"`
	Color         string           `json:"color"`
	Features      model.StringList `json:"features"`
	FeaturesEn    model.StringList `json:"features_en"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Order         *int             `json:"order,omitempty"`
}

// UpdateServiceRequest is the request body for patching a service.
type UpdateServiceRequest struct {
	Title         *string          `json:"title,omitempty"`
	TitleEn       *string          `json:"title_en,omitempty"`
	Description   *string          `json:"description,omitempty"`
	DescriptionEn *string          `json:"description_en,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	Color         *string          `json:"color,omitempty"`
	Features      model.StringList `json:"features,omitempty"`
	FeaturesEn    model.StringList `json:"features_en,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Order         *int             `json:"order,omitempty"`
}

func (req *CreateServiceRequest) validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "description is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListServices handles GET /api/services (active only, cached).
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.content.ActiveServices(r.Context(), func() ([]model.Service, error) {
		return h.store().GetActiveServices(r.Context())
	})
	if err != nil {
		h.writeStoreError(w, "list services", err)
		return
	}
	WriteList(w, services)
}

// AdminListServices handles GET /api/admin/services (everything).
func (h *Handler) AdminListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.store().GetServices(r.Context())
	if err != nil {
		h.writeStoreError(w, "list services", err)
		return
	}
	WriteList(w, services)
}

// AdminGetService handles GET /api/admin/services/{id}.
func (h *Handler) AdminGetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.store().GetService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "get service", err)
		return
	}
	if svc == nil {
		WriteNotFound(w, "Service not found")
		return
	}
	WriteSuccess(w, svc, nil)
}

// AdminCreateService handles POST /api/admin/services.
func (h *Handler) AdminCreateService(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.validate(); errs != nil {
		WriteValidationError(w, errs)
		return
	}

	svc, err := h.store().CreateService(r.Context(), storage.CreateServiceParams{
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		Icon:          req.Icon,
		Color:         req.Color,
		Features:      req.Features,
		FeaturesEn:    req.FeaturesEn,
		IsActive:      req.IsActive,
		Order:         req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "create service", err)
		return
	}
	h.content.InvalidateServices(r.Context())
	WriteCreated(w, svc)
}

// AdminUpdateService handles PUT /api/admin/services/{id}.
func (h *Handler) AdminUpdateService(w http.ResponseWriter, r *http.Request) {
	var req UpdateServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svc, err := h.store().UpdateService(r.Context(), chi.URLParam(r, "id"), storage.UpdateServiceParams{
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		Icon:          req.Icon,
		Color:         req.Color,
		Features:      req.Features,
		FeaturesEn:    req.FeaturesEn,
		IsActive:      req.IsActive,
		Order:         req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "update service", err)
		return
	}
	if svc == nil {
		WriteNotFound(w, "Service not found")
		return
	}
	h.content.InvalidateServices(r.Context())
	WriteSuccess(w, svc, nil)
}

// AdminDeleteService handles DELETE /api/admin/services/{id}.
func (h *Handler) AdminDeleteService(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete service", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Service not found")
		return
	}
	h.content.InvalidateServices(r.Context())
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
