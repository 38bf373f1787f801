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

// CreateTestimonialRequest is the request body for creating a testimonial.
type CreateTestimonialRequest struct {
	ClientName      string  `json:"client_name"`
	ClientNameEn    *string `json:"client_name_en,omitempty"`
	ClientTitle     *string `json:"client_title,omitempty"`
	ClientTitleEn   *string `json:"client_title_en,omitempty"`
	ClientCompany   *string `json:"client_company,omitempty"`
	ClientCompanyEn *string `json:"client_company_en,omitempty"`
	Testimonial     string  `json:"testimonial"`
	TestimonialEn   *string `json:"testimonial_en,omitempty"`
	Rating          int     `json:"rating"`
	ClientImage     *string `json:"client_image,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
	IsPublished     *bool   `json:"is_published,omitempty"`
	IsFeatured      *bool   `json:"is_featured,omitempty"`
	Order           *int    `json:"order,omitempty"`
}

// UpdateTestimonialRequest is the request body for patching a testimonial.
type UpdateTestimonialRequest struct {
	ClientName      *string `json:"client_name,omitempty"`
	ClientNameEn    *string `json:"client_name_en,omitempty"`
	ClientTitle     *string `json:"client_title,omitempty"`
	ClientTitleEn   *string `json:"client_title_en,omitempty"`
	ClientCompany   *string `json:"client_company,omitempty"`
	ClientCompanyEn *string `json:"client_company_en,omitempty"`
	Testimonial     *string `json:"testimonial,omitempty"`
	TestimonialEn   *string `json:"testimonial_en,omitempty"`
	Rating          *int    `json:"rating,omitempty"`
	ClientImage     *string `json:"client_image,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
	IsPublished     *bool   `json:"is_published,omitempty"`
	IsFeatured      *bool   `json:"is_featured,omitempty"`
	Order           *int    `json:"order,omitempty"`
}

func (req *CreateTestimonialRequest) validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.ClientName) == "" {
		errs["client_name"] = "client name is required"
	}
	if strings.TrimSpace(req.Testimonial) == "" {
		errs["testimonial"] = "testimonial text is required"
	}
	if req.Rating < 1 || req.Rating > 5 {
		errs["rating"] = "rating must be between 1 and 5"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListTestimonials handles GET /api/testimonials (published only,
// ?featured=true narrows, ?project=id filters).
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	var (
		testimonials []model.Testimonial
		err          error
	)
	switch {
	case r.URL.Query().Get("project") != "":
		testimonials, err = h.store().GetTestimonialsByProject(r.Context(), r.URL.Query().Get("project"))
	case r.URL.Query().Get("featured") == "true":
		testimonials, err = h.store().GetFeaturedTestimonials(r.Context())
	default:
		testimonials, err = h.store().GetPublishedTestimonials(r.Context())
	}
	if err != nil {
		h.writeStoreError(w, "list testimonials", err)
		return
	}
	WriteList(w, testimonials)
}

// AdminListTestimonials handles GET /api/admin/testimonials.
func (h *Handler) AdminListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.store().GetTestimonials(r.Context())
	if err != nil {
		h.writeStoreError(w, "list testimonials", err)
		return
	}
	WriteList(w, testimonials)
}

// AdminGetTestimonial handles GET /api/admin/testimonials/{id}.
func (h *Handler) AdminGetTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonial, err := h.store().GetTestimonial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "get testimonial", err)
		return
	}
	if testimonial == nil {
		WriteNotFound(w, "Testimonial not found")
		return
	}
	WriteSuccess(w, testimonial, nil)
}

// AdminCreateTestimonial handles POST /api/admin/testimonials.
func (h *Handler) AdminCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.validate(); errs != nil {
		WriteValidationError(w, errs)
		return
	}

	testimonial, err := h.store().CreateTestimonial(r.Context(), storage.CreateTestimonialParams{
		ClientName:      req.ClientName,
		ClientNameEn:    req.ClientNameEn,
		ClientTitle:     req.ClientTitle,
		ClientTitleEn:   req.ClientTitleEn,
		ClientCompany:   req.ClientCompany,
		ClientCompanyEn: req.ClientCompanyEn,
		Testimonial:     req.Testimonial,
		TestimonialEn:   req.TestimonialEn,
		Rating:          req.Rating,
		ClientImage:     req.ClientImage,
		ProjectID:       req.ProjectID,
		IsPublished:     req.IsPublished,
		IsFeatured:      req.IsFeatured,
		Order:           req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "create testimonial", err)
		return
	}
	WriteCreated(w, testimonial)
}

// AdminUpdateTestimonial handles PUT /api/admin/testimonials/{id}.
func (h *Handler) AdminUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req UpdateTestimonialRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		WriteValidationError(w, map[string]string{"rating": "rating must be between 1 and 5"})
		return
	}

	testimonial, err := h.store().UpdateTestimonial(r.Context(), chi.URLParam(r, "id"), storage.UpdateTestimonialParams{
		ClientName:      req.ClientName,
		ClientNameEn:    req.ClientNameEn,
		ClientTitle:     req.ClientTitle,
		ClientTitleEn:   req.ClientTitleEn,
		ClientCompany:   req.ClientCompany,
		ClientCompanyEn: req.ClientCompanyEn,
		Testimonial:     req.Testimonial,
		TestimonialEn:   req.TestimonialEn,
		Rating:          req.Rating,
		ClientImage:     req.ClientImage,
		ProjectID:       req.ProjectID,
		IsPublished:     req.IsPublished,
		IsFeatured:      req.IsFeatured,
		Order:           req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "update testimonial", err)
		return
	}
	if testimonial == nil {
		WriteNotFound(w, "Testimonial not found")
		return
	}
	WriteSuccess(w, testimonial, nil)
}

// AdminDeleteTestimonial handles DELETE /api/admin/testimonials/{id}.
func (h *Handler) AdminDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteTestimonial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete testimonial", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Testimonial not found")
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
