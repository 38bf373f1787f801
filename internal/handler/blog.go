// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

// CreateBlogPostRequest is the request body for creating a post. Slug is
// optional; when empty it is derived from the title.
type CreateBlogPostRequest struct {
	Title       string           `json:"title"`
	TitleEn     *string          `json:"title_en,omitempty"`
	Slug        string           `json:"slug,omitempty"`
	Content     string           `json:"content"`
	ContentEn   *string          `json:"content_en,omitempty"`
	Excerpt     *string          `json:"excerpt,omitempty"`
	ExcerptEn   *string          `json:"excerpt_en,omitempty"`
	Tags        model.StringList `json:"tags"`
	TagsEn      model.StringList `json:"tags_en"`
	Category    *string          `json:"category,omitempty"`
	CategoryEn  *string          `json:"category_en,omitempty"`
	IsPublished *bool            `json:"is_published,omitempty"`
	IsFeatured  *bool            `json:"is_featured,omitempty"`
	PublishedAt *time.Time       `json:"published_at,omitempty"`
	ReadingTime *int             `json:"reading_time,omitempty"`
	AuthorID    *string          `json:"author_id,omitempty"`
}

// UpdateBlogPostRequest is the request body for patching a post.
type UpdateBlogPostRequest struct {
	Title       *string          `json:"title,omitempty"`
	TitleEn     *string          `json:"title_en,omitempty"`
	Slug        *string          `json:"slug,omitempty"`
	Content     *string          `json:"content,omitempty"`
	ContentEn   *string          `json:"content_en,omitempty"`
	Excerpt     *string          `json:"excerpt,omitempty"`
	ExcerptEn   *string          `json:"excerpt_en,omitempty"`
	Tags        model.StringList `json:"tags,omitempty"`
	TagsEn      model.StringList `json:"tags_en,omitempty"`
	Category    *string          `json:"category,omitempty"`
	CategoryEn  *string          `json:"category_en,omitempty"`
	IsPublished *bool            `json:"is_published,omitempty"`
	IsFeatured  *bool            `json:"is_featured,omitempty"`
	PublishedAt *time.Time       `json:"published_at,omitempty"`
	ReadingTime *int             `json:"reading_time,omitempty"`
	AuthorID    *string          `json:"author_id,omitempty"`
}

// ListBlogPosts handles GET /api/blog. Only published posts are visible;
// ?featured=true narrows further.
func (h *Handler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	var (
		posts []model.BlogPost
		err   error
	)
	if r.URL.Query().Get("featured") == "true" {
		posts, err = h.store().GetFeaturedBlogPosts(r.Context())
	} else {
		posts, err = h.store().GetPublishedBlogPosts(r.Context())
	}
	if err != nil {
		h.writeStoreError(w, "list blog posts", err)
		return
	}
	WriteList(w, posts)
}

// GetBlogPost handles GET /api/blog/{slug}: the published post with its
// markdown rendered to sanitized HTML. Each hit counts a view.
func (h *Handler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.blog.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeStoreError(w, "get blog post", err)
		return
	}
	if post == nil {
		WriteNotFound(w, "Post not found")
		return
	}

	rendered, err := h.blog.Render(post)
	if err != nil {
		h.writeStoreError(w, "render blog post", err)
		return
	}
	WriteSuccess(w, rendered, nil)
}

// AdminListBlogPosts handles GET /api/admin/blog (drafts included).
func (h *Handler) AdminListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store().GetBlogPosts(r.Context())
	if err != nil {
		h.writeStoreError(w, "list blog posts", err)
		return
	}
	WriteList(w, posts)
}

// AdminGetBlogPost handles GET /api/admin/blog/{id}.
func (h *Handler) AdminGetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.store().GetBlogPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "get blog post", err)
		return
	}
	if post == nil {
		WriteNotFound(w, "Post not found")
		return
	}
	WriteSuccess(w, post, nil)
}

// AdminCreateBlogPost handles POST /api/admin/blog.
func (h *Handler) AdminCreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogPostRequest
	if !decodeBody(w, r, &req) {
		return
	}
	errs := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = "content is required"
	}
	if len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	post, err := h.blog.Create(r.Context(), storage.CreateBlogPostParams{
		Title:       req.Title,
		TitleEn:     req.TitleEn,
		Slug:        req.Slug,
		Content:     req.Content,
		ContentEn:   req.ContentEn,
		Excerpt:     req.Excerpt,
		ExcerptEn:   req.ExcerptEn,
		Tags:        req.Tags,
		TagsEn:      req.TagsEn,
		Category:    req.Category,
		CategoryEn:  req.CategoryEn,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
		PublishedAt: req.PublishedAt,
		ReadingTime: req.ReadingTime,
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		h.writeStoreError(w, "create blog post", err)
		return
	}
	WriteCreated(w, post)
}

// AdminUpdateBlogPost handles PUT /api/admin/blog/{id}.
func (h *Handler) AdminUpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req UpdateBlogPostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.blog.Update(r.Context(), chi.URLParam(r, "id"), storage.UpdateBlogPostParams{
		Title:       req.Title,
		TitleEn:     req.TitleEn,
		Slug:        req.Slug,
		Content:     req.Content,
		ContentEn:   req.ContentEn,
		Excerpt:     req.Excerpt,
		ExcerptEn:   req.ExcerptEn,
		Tags:        req.Tags,
		TagsEn:      req.TagsEn,
		Category:    req.Category,
		CategoryEn:  req.CategoryEn,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
		PublishedAt: req.PublishedAt,
		ReadingTime: req.ReadingTime,
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		h.writeStoreError(w, "update blog post", err)
		return
	}
	if post == nil {
		WriteNotFound(w, "Post not found")
		return
	}
	WriteSuccess(w, post, nil)
}

// AdminDeleteBlogPost handles DELETE /api/admin/blog/{id}.
func (h *Handler) AdminDeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteBlogPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete blog post", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Post not found")
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
