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

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	Title              string           `json:"title"`
	TitleEn            *string          `json:"title_en,omitempty"`
	Description        string           `json:"description"`
	DescriptionEn      *string          `json:"description_en,omitempty"`
	ShortDescription   *string          `json:"short_description,omitempty"`
	ShortDescriptionEn *string          `json:"short_description_en,omitempty"`
	Technologies       model.StringList `json:"technologies"`
	Images             model.StringList `json:"images"`
	LiveURL            *string          `json:"live_url,omitempty"`
	GithubURL          *string          `json:"github_url,omitempty"`
	Category           string           `json:"category"`
	IsActive           *bool            `json:"is_active,omitempty"`
	IsFeatured         *bool            `json:"is_featured,omitempty"`
	Order              *int             `json:"order,omitempty"`
}

// UpdateProjectRequest is the request body for patching a project.
type UpdateProjectRequest struct {
	Title              *string          `json:"title,omitempty"`
	TitleEn            *string          `json:"title_en,omitempty"`
	Description        *string          `json:"description,omitempty"`
	DescriptionEn      *string          `json:"description_en,omitempty"`
	ShortDescription   *string          `json:"short_description,omitempty"`
	ShortDescriptionEn *string          `json:"short_description_en,omitempty"`
	Technologies       model.StringList `json:"technologies,omitempty"`
	Images             model.StringList `json:"images,omitempty"`
	LiveURL            *string          `json:"live_url,omitempty"`
	GithubURL          *string          `json:"github_url,omitempty"`
	Category           *string          `json:"category,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
	IsFeatured         *bool            `json:"is_featured,omitempty"`
	Order              *int             `json:"order,omitempty"`
}

func (req *CreateProjectRequest) validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "description is required"
	}
	if strings.TrimSpace(req.Category) == "" {
		errs["category"] = "category is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListProjects handles GET /api/projects. ?featured=true narrows to
// featured projects, ?category=x filters by category; both are served
// from the content cache where possible.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if category := r.URL.Query().Get("category"); category != "" {
		projects, err := h.store().GetProjectsByCategory(ctx, category)
		if err != nil {
			h.writeStoreError(w, "list projects", err)
			return
		}
		WriteList(w, projects)
		return
	}

	var (
		projects []model.Project
		err      error
	)
	if r.URL.Query().Get("featured") == "true" {
		projects, err = h.content.FeaturedProjects(ctx, func() ([]model.Project, error) {
			return h.store().GetFeaturedProjects(ctx)
		})
	} else {
		projects, err = h.content.ActiveProjects(ctx, func() ([]model.Project, error) {
			return h.store().GetActiveProjects(ctx)
		})
	}
	if err != nil {
		h.writeStoreError(w, "list projects", err)
		return
	}
	WriteList(w, projects)
}

// GetProject handles GET /api/projects/{id}. Inactive projects stay
// hidden from the public surface.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.store().GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "get project", err)
		return
	}
	if project == nil || !project.IsActive {
		WriteNotFound(w, "Project not found")
		return
	}
	WriteSuccess(w, project, nil)
}

// AdminListProjects handles GET /api/admin/projects.
func (h *Handler) AdminListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store().GetProjects(r.Context())
	if err != nil {
		h.writeStoreError(w, "list projects", err)
		return
	}
	WriteList(w, projects)
}

// AdminGetProject handles GET /api/admin/projects/{id}.
func (h *Handler) AdminGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.store().GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "get project", err)
		return
	}
	if project == nil {
		WriteNotFound(w, "Project not found")
		return
	}
	WriteSuccess(w, project, nil)
}

// AdminCreateProject handles POST /api/admin/projects.
func (h *Handler) AdminCreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.validate(); errs != nil {
		WriteValidationError(w, errs)
		return
	}

	project, err := h.store().CreateProject(r.Context(), storage.CreateProjectParams{
		Title:              req.Title,
		TitleEn:            req.TitleEn,
		Description:        req.Description,
		DescriptionEn:      req.DescriptionEn,
		ShortDescription:   req.ShortDescription,
		ShortDescriptionEn: req.ShortDescriptionEn,
		Technologies:       req.Technologies,
		Images:             req.Images,
		LiveURL:            req.LiveURL,
		GithubURL:          req.GithubURL,
		Category:           req.Category,
		IsActive:           req.IsActive,
		IsFeatured:         req.IsFeatured,
		Order:              req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "create project", err)
		return
	}
	h.content.InvalidateProjects(r.Context())
	WriteCreated(w, project)
}

// AdminUpdateProject handles PUT /api/admin/projects/{id}.
func (h *Handler) AdminUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req UpdateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	project, err := h.store().UpdateProject(r.Context(), chi.URLParam(r, "id"), storage.UpdateProjectParams{
		Title:              req.Title,
		TitleEn:            req.TitleEn,
		Description:        req.Description,
		DescriptionEn:      req.DescriptionEn,
		ShortDescription:   req.ShortDescription,
		ShortDescriptionEn: req.ShortDescriptionEn,
		Technologies:       req.Technologies,
		Images:             req.Images,
		LiveURL:            req.LiveURL,
		GithubURL:          req.GithubURL,
		Category:           req.Category,
		IsActive:           req.IsActive,
		IsFeatured:         req.IsFeatured,
		Order:              req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "update project", err)
		return
	}
	if project == nil {
		WriteNotFound(w, "Project not found")
		return
	}
	h.content.InvalidateProjects(r.Context())
	WriteSuccess(w, project, nil)
}

// AdminDeleteProject handles DELETE /api/admin/projects/{id}.
func (h *Handler) AdminDeleteProject(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete project", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Project not found")
		return
	}
	h.content.InvalidateProjects(r.Context())
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
