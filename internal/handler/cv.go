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

// CreateCvEntryRequest is the request body for creating a CV entry.
type CreateCvEntryRequest struct {
	Type          string           `json:"type"`
	Title         string           `json:"title"`
	TitleEn       *string          `json:"title_en,omitempty"`
	Subtitle      *string          `json:"subtitle,omitempty"`
	SubtitleEn    *string          `json:"subtitle_en,omitempty"`
	Description   *string          `json:"description,omitempty"`
	DescriptionEn *string          `json:"description_en,omitempty"`
	StartDate     *string          `json:"start_date,omitempty"`
	EndDate       *string          `json:"end_date,omitempty"`
	Location      *string          `json:"location,omitempty"`
	LocationEn    *string          `json:"location_en,omitempty"`
	Skills        model.StringList `json:"skills"`
	Level         *int             `json:"level,omitempty"`
	URL           *string          `json:"url,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Order         *int             `json:"order,omitempty"`
}

// UpdateCvEntryRequest is the request body for patching a CV entry.
// The type of an entry is immutable.
type UpdateCvEntryRequest struct {
	Title         *string          `json:"title,omitempty"`
	TitleEn       *string          `json:"title_en,omitempty"`
	Subtitle      *string          `json:"subtitle,omitempty"`
	SubtitleEn    *string          `json:"subtitle_en,omitempty"`
	Description   *string          `json:"description,omitempty"`
	DescriptionEn *string          `json:"description_en,omitempty"`
	StartDate     *string          `json:"start_date,omitempty"`
	EndDate       *string          `json:"end_date,omitempty"`
	Location      *string          `json:"location,omitempty"`
	LocationEn    *string          `json:"location_en,omitempty"`
	Skills        model.StringList `json:"skills,omitempty"`
	Level         *int             `json:"level,omitempty"`
	URL           *string          `json:"url,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Order         *int             `json:"order,omitempty"`
}

func (req *CreateCvEntryRequest) validate() map[string]string {
	errs := make(map[string]string)
	if !model.IsValidCvType(req.Type) {
		errs["type"] = "unknown CV entry type"
	}
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "title is required"
	}
	if req.Level != nil && (*req.Level < 1 || *req.Level > 5) {
		errs["level"] = "level must be between 1 and 5"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GetCv handles GET /api/cv: all active entries grouped by type so the
// frontend renders the resume in one request.
func (h *Handler) GetCv(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store().GetActiveCvData(r.Context())
	if err != nil {
		h.writeStoreError(w, "get cv", err)
		return
	}

	grouped := make(map[string][]model.CvData)
	for _, e := range entries {
		grouped[e.Type] = append(grouped[e.Type], e)
	}
	WriteSuccess(w, grouped, &Meta{Total: len(entries)})
}

// GetCvByType handles GET /api/cv/{type} (active entries, cached).
func (h *Handler) GetCvByType(w http.ResponseWriter, r *http.Request) {
	cvType := chi.URLParam(r, "type")
	if !model.IsValidCvType(cvType) {
		WriteNotFound(w, "Unknown CV section")
		return
	}

	entries, err := h.content.ActiveCvByType(r.Context(), cvType, func() ([]model.CvData, error) {
		all, err := h.store().GetCvDataByType(r.Context(), cvType)
		if err != nil {
			return nil, err
		}
		active := make([]model.CvData, 0, len(all))
		for _, e := range all {
			if e.IsActive {
				active = append(active, e)
			}
		}
		return active, nil
	})
	if err != nil {
		h.writeStoreError(w, "get cv section", err)
		return
	}
	WriteList(w, entries)
}

// AdminListCv handles GET /api/admin/cv.
func (h *Handler) AdminListCv(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store().GetCvData(r.Context())
	if err != nil {
		h.writeStoreError(w, "list cv entries", err)
		return
	}
	WriteList(w, entries)
}

// AdminGetCvEntry handles GET /api/admin/cv/{id}.
func (h *Handler) AdminGetCvEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.store().GetCvDataByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "get cv entry", err)
		return
	}
	if entry == nil {
		WriteNotFound(w, "CV entry not found")
		return
	}
	WriteSuccess(w, entry, nil)
}

// AdminCreateCvEntry handles POST /api/admin/cv.
func (h *Handler) AdminCreateCvEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateCvEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.validate(); errs != nil {
		WriteValidationError(w, errs)
		return
	}

	entry, err := h.store().CreateCvData(r.Context(), storage.CreateCvDataParams{
		Type:          req.Type,
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Subtitle:      req.Subtitle,
		SubtitleEn:    req.SubtitleEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Location:      req.Location,
		LocationEn:    req.LocationEn,
		Skills:        req.Skills,
		Level:         req.Level,
		URL:           req.URL,
		Icon:          req.Icon,
		IsActive:      req.IsActive,
		Order:         req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "create cv entry", err)
		return
	}
	h.content.InvalidateCv(r.Context())
	WriteCreated(w, entry)
}

// AdminUpdateCvEntry handles PUT /api/admin/cv/{id}.
func (h *Handler) AdminUpdateCvEntry(w http.ResponseWriter, r *http.Request) {
	var req UpdateCvEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Level != nil && (*req.Level < 1 || *req.Level > 5) {
		WriteValidationError(w, map[string]string{"level": "level must be between 1 and 5"})
		return
	}

	entry, err := h.store().UpdateCvData(r.Context(), chi.URLParam(r, "id"), storage.UpdateCvDataParams{
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Subtitle:      req.Subtitle,
		SubtitleEn:    req.SubtitleEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Location:      req.Location,
		LocationEn:    req.LocationEn,
		Skills:        req.Skills,
		Level:         req.Level,
		URL:           req.URL,
		Icon:          req.Icon,
		IsActive:      req.IsActive,
		Order:         req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "update cv entry", err)
		return
	}
	if entry == nil {
		WriteNotFound(w, "CV entry not found")
		return
	}
	h.content.InvalidateCv(r.Context())
	WriteSuccess(w, entry, nil)
}

// AdminDeleteCvEntry handles DELETE /api/admin/cv/{id}.
func (h *Handler) AdminDeleteCvEntry(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteCvData(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete cv entry", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "CV entry not found")
		return
	}
	h.content.InvalidateCv(r.Context())
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
